// Package validation builds the waitlist field rules for one locale.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

const (
	tagCountryCode  = "country_code"
	tagCategoryCode = "category_code"
)

// record is the trimmed draft the rules run against
type record struct {
	FullName    string   `json:"fullName" validate:"min=2,max=100"`
	CompanyName string   `json:"companyName" validate:"max=100"`
	Email       string   `json:"email" validate:"email,max=255"`
	Whatsapp    string   `json:"whatsapp" validate:"min=8,max=20"`
	UserType    string   `json:"userType" validate:"oneof=buyer supplier"`
	Country     string   `json:"country" validate:"required,country_code"`
	Categories  []string `json:"categories" validate:"min=1,unique,dive,category_code"`
}

// Codes are the known coded values for the option lists
type Codes struct {
	Countries  []string
	Categories []string
}

// CodesOf extracts the coded values of a form's option lists
func CodesOf(form i18n.Form) Codes {
	return Codes{
		Countries:  i18n.Values(form.CountryOptions),
		Categories: i18n.Values(form.CategoryOptions),
	}
}

// Schema validates drafts and reports failures in one locale.
// A schema embeds its locale's messages; build a new one on every locale change.
type Schema struct {
	locale   domain.Locale
	messages i18n.ValidationMessages
	validate *validator.Validate
	trans    ut.Translator
	custom   map[string]string
}

// Build creates a schema whose failure messages come from messages, falling
// back to the validator's default wording in locale l for rules without one.
func Build(l domain.Locale, messages i18n.ValidationMessages, codes Codes) (*Schema, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(tagCountryCode, oneOfSet(codes.Countries)); err != nil {
		return nil, fmt.Errorf("register %s: %w", tagCountryCode, err)
	}
	if err := v.RegisterValidation(tagCategoryCode, oneOfSet(codes.Categories)); err != nil {
		return nil, fmt.Errorf("register %s: %w", tagCategoryCode, err)
	}

	uni := ut.New(en.New(), en.New(), es.New())
	trans, found := uni.GetTranslator(string(l))
	if !found {
		return nil, fmt.Errorf("no translator for locale %q", l)
	}

	var err error
	switch l {
	case domain.Spanish:
		err = es_translations.RegisterDefaultTranslations(v, trans)
	default:
		err = en_translations.RegisterDefaultTranslations(v, trans)
	}
	if err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	return &Schema{
		locale:   l,
		messages: messages,
		validate: v,
		trans:    trans,
		custom: map[string]string{
			ruleKey(domain.FieldFullName, "min"):             messages.FullName,
			ruleKey(domain.FieldEmail, "email"):              messages.Email,
			ruleKey(domain.FieldWhatsapp, "min"):             messages.Whatsapp,
			ruleKey(domain.FieldCountry, "required"):         messages.Country,
			ruleKey(domain.FieldCountry, tagCountryCode):     messages.Country,
			ruleKey(domain.FieldCategories, "min"):           messages.Categories,
			ruleKey(domain.FieldCategories, tagCategoryCode): messages.Categories,
		},
	}, nil
}

// ForLocale builds a fresh schema from the catalog's tree for l
func ForLocale(c *i18n.Catalog, l domain.Locale) (*Schema, error) {
	t := c.Resolve(l)
	return Build(l, t.Form.Validation, CodesOf(c.Reference().Form))
}

// Locale returns the locale the schema's messages are in
func (s *Schema) Locale() domain.Locale {
	return s.locale
}

// Messages returns the locale-specific messages embedded in the schema
func (s *Schema) Messages() i18n.ValidationMessages {
	return s.messages
}

// Validate runs every field rule against the trimmed draft. All fields are
// evaluated; each failing field gets exactly one message.
func (s *Schema) Validate(d domain.Draft) domain.ValidationResult {
	result := domain.ValidationResult{}

	categories := d.Categories
	if categories == nil {
		categories = []string{}
	}
	r := record{
		FullName:    strings.TrimSpace(d.FullName),
		CompanyName: strings.TrimSpace(d.CompanyName),
		Email:       strings.TrimSpace(d.Email),
		Whatsapp:    strings.TrimSpace(d.Whatsapp),
		UserType:    string(d.UserType),
		Country:     d.Country,
		Categories:  categories,
	}

	err := s.validate.Struct(r)
	if err == nil {
		return result
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return result
	}

	for _, fe := range fieldErrors {
		field := baseField(fe.Field())
		if result.Has(field) {
			continue
		}
		result[field] = s.message(field, fe)
	}
	return result
}

func (s *Schema) message(field domain.Field, fe validator.FieldError) string {
	if msg, ok := s.custom[ruleKey(field, fe.Tag())]; ok {
		return msg
	}
	return fe.Translate(s.trans)
}

func ruleKey(field domain.Field, tag string) string {
	return string(field) + "." + tag
}

// baseField strips a dive index, "categories[2]" -> "categories"
func baseField(name string) domain.Field {
	base, _, _ := strings.Cut(name, "[")
	return domain.Field(base)
}

func oneOfSet(values []string) validator.Func {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}
