package i18n

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"waitlist/internal/domain"
)

// ReferenceLocale is the locale whose labels are sent on the wire
const ReferenceLocale = domain.English

// ErrUnknownLocale is returned for a locale with no content tree
var ErrUnknownLocale = errors.New("unknown locale")

// Catalog maps each supported locale to its content tree.
// Trees are shared and must be treated as read-only.
type Catalog struct {
	trees map[domain.Locale]*Translation
}

var defaultCatalog = &Catalog{
	trees: map[domain.Locale]*Translation{
		domain.English: &english,
		domain.Spanish: &spanish,
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	return defaultCatalog
}

// NewCatalog builds a catalog from explicit trees
func NewCatalog(trees map[domain.Locale]*Translation) *Catalog {
	return &Catalog{trees: trees}
}

// Resolve returns the tree for l. Unsupported locales resolve to the reference tree.
func (c *Catalog) Resolve(l domain.Locale) *Translation {
	if t, ok := c.trees[l]; ok {
		return t
	}
	return c.trees[ReferenceLocale]
}

// Lookup returns the tree for l or ErrUnknownLocale
func (c *Catalog) Lookup(l domain.Locale) (*Translation, error) {
	t, ok := c.trees[l]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, l)
	}
	return t, nil
}

// Reference returns the tree used for wire labels
func (c *Catalog) Reference() *Translation {
	return c.Resolve(ReferenceLocale)
}

// Locales returns the catalog's locales in sorted order
func (c *Catalog) Locales() []domain.Locale {
	locales := make([]domain.Locale, 0, len(c.trees))
	for l := range c.trees {
		locales = append(locales, l)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })
	return locales
}

// CheckParity verifies every tree has the same key paths, no empty leaves,
// and identical option values in identical order.
func (c *Catalog) CheckParity() error {
	locales := c.Locales()
	if len(locales) == 0 {
		return errors.New("catalog is empty")
	}

	base := locales[0]
	baseTree := c.trees[base]
	baseKeys := Keys(baseTree)

	for _, l := range locales {
		t := c.trees[l]
		if path, ok := firstEmptyLeaf(reflect.ValueOf(*t), ""); ok {
			return fmt.Errorf("locale %s: empty value at %s", l, path)
		}
		if l == base {
			continue
		}
		if err := compareKeys(base, baseKeys, l, Keys(t)); err != nil {
			return err
		}
		if err := compareValues("form.countryOptions", baseTree.Form.CountryOptions, t.Form.CountryOptions); err != nil {
			return fmt.Errorf("locale %s: %w", l, err)
		}
		if err := compareValues("form.categoryOptions", baseTree.Form.CategoryOptions, t.Form.CategoryOptions); err != nil {
			return fmt.Errorf("locale %s: %w", l, err)
		}
	}
	return nil
}

// Keys returns every leaf path of t in a stable order, e.g.
// "form.countryOptions[3].label".
func Keys(t *Translation) []string {
	var keys []string
	collectKeys(reflect.ValueOf(*t), "", &keys)
	return keys
}

func collectKeys(v reflect.Value, prefix string, keys *[]string) {
	switch v.Kind() {
	case reflect.Struct:
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			collectKeys(v.Field(i), joinPath(prefix, jsonName(typ.Field(i))), keys)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			collectKeys(v.Index(i), fmt.Sprintf("%s[%d]", prefix, i), keys)
		}
	default:
		*keys = append(*keys, prefix)
	}
}

func firstEmptyLeaf(v reflect.Value, prefix string) (string, bool) {
	switch v.Kind() {
	case reflect.Struct:
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if path, ok := firstEmptyLeaf(v.Field(i), joinPath(prefix, jsonName(typ.Field(i)))); ok {
				return path, true
			}
		}
	case reflect.Slice:
		if v.Len() == 0 {
			return prefix, true
		}
		for i := 0; i < v.Len(); i++ {
			if path, ok := firstEmptyLeaf(v.Index(i), fmt.Sprintf("%s[%d]", prefix, i)); ok {
				return path, true
			}
		}
	case reflect.String:
		if strings.TrimSpace(v.String()) == "" {
			return prefix, true
		}
	}
	return "", false
}

func compareKeys(a domain.Locale, aKeys []string, b domain.Locale, bKeys []string) error {
	inB := make(map[string]bool, len(bKeys))
	for _, k := range bKeys {
		inB[k] = true
	}
	for _, k := range aKeys {
		if !inB[k] {
			return fmt.Errorf("key %s present in %s but missing in %s", k, a, b)
		}
		delete(inB, k)
	}
	for _, k := range bKeys {
		if inB[k] {
			return fmt.Errorf("key %s present in %s but missing in %s", k, b, a)
		}
	}
	return nil
}

func compareValues(name string, a, b []Option) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s: %d options, expected %d", name, len(b), len(a))
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			return fmt.Errorf("%s[%d]: value %q, expected %q", name, i, b[i].Value, a[i].Value)
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			return name
		}
	}
	return f.Name
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
