package domain

import "strings"

// Locale is the active display language
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Locales lists the supported locales, English first
var Locales = []Locale{English, Spanish}

// ParseLocale accepts only the exact supported tags
func ParseLocale(value string) (Locale, bool) {
	switch Locale(strings.TrimSpace(value)) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return "", false
}

// Valid reports whether l is one of the supported locales
func (l Locale) Valid() bool {
	_, ok := ParseLocale(string(l))
	return ok
}

// Other returns the locale a toggle switches to
func (l Locale) Other() Locale {
	if l == English {
		return Spanish
	}
	return English
}

func (l Locale) String() string {
	return string(l)
}
