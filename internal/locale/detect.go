package locale

import (
	"strings"

	"waitlist/internal/domain"

	"golang.org/x/text/language"
)

// Detect derives a locale from a single language preference such as a
// Telegram language code or the LANG variable: anything starting with "es"
// is Spanish, everything else English.
func Detect(signal string) domain.Locale {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(signal)), string(domain.Spanish)) {
		return domain.Spanish
	}
	return domain.English
}

var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

var tagLocales = []domain.Locale{
	domain.English,
	domain.Spanish,
}

var matcher = language.NewMatcher(supportedTags)

// Negotiate picks the best supported locale for an Accept-Language header.
// Unparseable or unmatched headers fall back to Detect on the raw value.
func Negotiate(acceptLanguage string) domain.Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return domain.English
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Detect(acceptLanguage)
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return domain.English
	}
	return tagLocales[index]
}
