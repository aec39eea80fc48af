package i18n

import (
	"testing"

	"waitlist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Parity(t *testing.T) {
	require.NoError(t, Default().CheckParity())

	en := Keys(Default().Resolve(domain.English))
	es := Keys(Default().Resolve(domain.Spanish))
	assert.Equal(t, en, es)
	assert.Contains(t, en, "form.validation.fullName")
	assert.Contains(t, en, "form.countryOptions[10].label")
	assert.Contains(t, en, "success.steps[3]")
}

func TestCatalog_OptionValuesUniqueInEveryLocale(t *testing.T) {
	for _, l := range domain.Locales {
		form := Default().Resolve(l).Form
		for name, options := range map[string][]Option{
			"country":  form.CountryOptions,
			"category": form.CategoryOptions,
		} {
			seen := map[string]int{}
			for _, o := range options {
				seen[o.Value]++
			}
			for value, count := range seen {
				assert.Equal(t, 1, count, "%s %s value %q", l, name, value)
			}
		}
	}

	ref := Default().Reference().Form
	for _, l := range domain.Locales {
		form := Default().Resolve(l).Form
		assert.Equal(t, Values(ref.CountryOptions), Values(form.CountryOptions))
		assert.Equal(t, Values(ref.CategoryOptions), Values(form.CategoryOptions))
	}
}

func TestCatalog_CheckParityDetectsMissingKey(t *testing.T) {
	broken := spanish
	broken.Success.Steps = broken.Success.Steps[:3]

	c := NewCatalog(map[domain.Locale]*Translation{
		domain.English: &english,
		domain.Spanish: &broken,
	})

	err := c.CheckParity()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "success.steps[3]")
}

func TestCatalog_CheckParityDetectsEmptyValue(t *testing.T) {
	broken := spanish
	broken.Form.Validation.Email = "  "

	c := NewCatalog(map[domain.Locale]*Translation{
		domain.English: &english,
		domain.Spanish: &broken,
	})

	err := c.CheckParity()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form.validation.email")
}

func TestCatalog_CheckParityDetectsChangedCode(t *testing.T) {
	broken := spanish
	broken.Form.CountryOptions = append([]Option{}, spanish.Form.CountryOptions...)
	broken.Form.CountryOptions[0] = Option{Value: "arg", Label: "Argentina"}

	c := NewCatalog(map[domain.Locale]*Translation{
		domain.English: &english,
		domain.Spanish: &broken,
	})

	err := c.CheckParity()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form.countryOptions[0]")
}

func TestCatalog_Resolve(t *testing.T) {
	c := Default()

	assert.Equal(t, "Switch to Spanish", c.Resolve(domain.English).Common.SwitchToSpanish)
	assert.Equal(t, "Cambiar a inglés", c.Resolve(domain.Spanish).Common.SwitchToEnglish)
	assert.Same(t, c.Reference(), c.Resolve("fr"))

	_, err := c.Lookup("fr")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestLabel(t *testing.T) {
	options := Default().Reference().Form.CountryOptions

	assert.Equal(t, "México", Label(options, "mx"))
	assert.Equal(t, "zz", Label(options, "zz"))
	assert.True(t, Has(options, "other"))
	assert.False(t, Has(options, ""))
}
