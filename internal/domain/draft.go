package domain

import "strings"

// UserType is the side of the marketplace a signup belongs to
type UserType string

const (
	UserTypeBuyer    UserType = "buyer"
	UserTypeSupplier UserType = "supplier"
)

// Valid reports whether t is buyer or supplier
func (t UserType) Valid() bool {
	return t == UserTypeBuyer || t == UserTypeSupplier
}

// Field names a form field. Values match the wire/JSON names.
type Field string

const (
	FieldFullName    Field = "fullName"
	FieldCompanyName Field = "companyName"
	FieldEmail       Field = "email"
	FieldWhatsapp    Field = "whatsapp"
	FieldUserType    Field = "userType"
	FieldCountry     Field = "country"
	FieldCategories  Field = "categories"
)

// FieldOrder is the order fields appear in the form
var FieldOrder = []Field{
	FieldUserType,
	FieldFullName,
	FieldCompanyName,
	FieldEmail,
	FieldWhatsapp,
	FieldCountry,
	FieldCategories,
}

// Draft holds the in-progress waitlist form data
type Draft struct {
	FullName    string   `json:"fullName"`
	CompanyName string   `json:"companyName,omitempty"`
	Email       string   `json:"email"`
	Whatsapp    string   `json:"whatsapp"`
	UserType    UserType `json:"userType"`
	Country     string   `json:"country"`
	Categories  []string `json:"categories"`
}

// NewDraft returns the empty form: buyer selected, no categories
func NewDraft() Draft {
	return Draft{
		UserType:   UserTypeBuyer,
		Categories: []string{},
	}
}

// Clone returns a copy that shares no slice memory with d
func (d Draft) Clone() Draft {
	c := d
	c.Categories = append([]string{}, d.Categories...)
	return c
}

// HasCategory reports whether code is selected
func (d Draft) HasCategory(code string) bool {
	for _, c := range d.Categories {
		if c == code {
			return true
		}
	}
	return false
}

// Normalize trims text fields and drops blank or repeated categories,
// keeping the first occurrence of each
func (d Draft) Normalize() Draft {
	n := d
	n.FullName = strings.TrimSpace(d.FullName)
	n.CompanyName = strings.TrimSpace(d.CompanyName)
	n.Email = strings.TrimSpace(d.Email)
	n.Whatsapp = strings.TrimSpace(d.Whatsapp)
	n.Country = strings.TrimSpace(d.Country)

	seen := make(map[string]bool, len(d.Categories))
	n.Categories = make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		n.Categories = append(n.Categories, c)
	}
	return n
}
