package submission

import (
	"strings"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"
)

// CategorySeparator joins category labels on the wire
const CategorySeparator = ", "

// Payload is the JSON body sent to the webhook
type Payload struct {
	Timestamp   string `json:"timestamp"`
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Whatsapp    string `json:"whatsapp"`
	UserType    string `json:"userType"`
	Country     string `json:"country"`
	Categories  string `json:"categories"`
}

// BuildPayload maps a draft to the wire format. Coded values are replaced by
// labels from reference, which is fixed regardless of the user's locale.
// Categories keep the order they were selected in.
func BuildPayload(d domain.Draft, reference *i18n.Translation, now time.Time) Payload {
	labels := make([]string, len(d.Categories))
	for i, code := range d.Categories {
		labels[i] = i18n.Label(reference.Form.CategoryOptions, code)
	}

	return Payload{
		Timestamp:   now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		FullName:    d.FullName,
		CompanyName: d.CompanyName,
		Email:       d.Email,
		Whatsapp:    d.Whatsapp,
		UserType:    string(d.UserType),
		Country:     i18n.Label(reference.Form.CountryOptions, d.Country),
		Categories:  strings.Join(labels, CategorySeparator),
	}
}
