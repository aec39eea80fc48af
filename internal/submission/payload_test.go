package submission

import (
	"testing"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayload(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.FixedZone("CST", -6*3600))

	tests := []struct {
		name     string
		draft    domain.Draft
		expected Payload
	}{
		{
			name: "labels come from the reference locale",
			draft: domain.Draft{
				FullName:   "Ana Gómez",
				Email:      "ana@example.com",
				Whatsapp:   "+52 123 456 7890",
				UserType:   domain.UserTypeBuyer,
				Country:    "mx",
				Categories: []string{"textiles-apparel"},
			},
			expected: Payload{
				Timestamp:   "2026-03-14T15:26:53.589Z",
				FullName:    "Ana Gómez",
				CompanyName: "",
				Email:       "ana@example.com",
				Whatsapp:    "+52 123 456 7890",
				UserType:    "buyer",
				Country:     "México",
				Categories:  "Textiles & Apparel",
			},
		},
		{
			name: "categories keep selection order",
			draft: domain.Draft{
				FullName:    "Li Wei",
				CompanyName: "Shenzhen Parts Co",
				Email:       "li@example.cn",
				Whatsapp:    "+86 138 0000 0000",
				UserType:    domain.UserTypeSupplier,
				Country:     "other",
				Categories:  []string{"toys-games", "electronics-technology", "other"},
			},
			expected: Payload{
				Timestamp:   "2026-03-14T15:26:53.589Z",
				FullName:    "Li Wei",
				CompanyName: "Shenzhen Parts Co",
				Email:       "li@example.cn",
				Whatsapp:    "+86 138 0000 0000",
				UserType:    "supplier",
				Country:     "Other",
				Categories:  "Toys & Games, Electronics & Technology, Other",
			},
		},
		{
			name: "unknown codes pass through",
			draft: domain.Draft{
				UserType:   domain.UserTypeBuyer,
				Country:    "zz",
				Categories: []string{"mystery"},
			},
			expected: Payload{
				Timestamp:  "2026-03-14T15:26:53.589Z",
				UserType:   "buyer",
				Country:    "zz",
				Categories: "mystery",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildPayload(tt.draft, i18n.Default().Reference(), now)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBuildPayload_IgnoresActiveLocale(t *testing.T) {
	d := domain.Draft{Country: "other", Categories: []string{"automotive-parts"}}

	result := BuildPayload(d, i18n.Default().Reference(), time.Now())

	assert.Equal(t, "Other", result.Country)
	assert.Equal(t, "Automotive Parts", result.Categories)
	assert.NotEqual(t, i18n.Label(i18n.Default().Resolve(domain.Spanish).Form.CountryOptions, "other"), result.Country)
}
