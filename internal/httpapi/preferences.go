package httpapi

import (
	"net/http"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/locale"

	"go.uber.org/zap"
)

// cookieMaxAge keeps the chosen locale for a year
const cookieMaxAge = 365 * 24 * time.Hour

// cookiePreferences stores preferences as cookies of one request/response pair
type cookiePreferences struct {
	r *http.Request
	w http.ResponseWriter
}

func (p cookiePreferences) GetPreference(key string) (string, bool, error) {
	c, err := p.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	return c.Value, true, nil
}

func (p cookiePreferences) SetPreference(key, value string) error {
	http.SetCookie(p.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (p cookiePreferences) CleanStalePreferences(days int) error {
	return nil
}

// localeStore opens the request's locale store. Without a valid cookie the
// locale is negotiated from Accept-Language and written back as a cookie.
func localeStore(w http.ResponseWriter, r *http.Request, logger *zap.Logger) *locale.Store {
	signal := locale.Negotiate(r.Header.Get("Accept-Language"))
	return locale.NewStore(cookiePreferences{r: r, w: w}, locale.StorageKey, string(signal), logger)
}

// requestLocale resolves the locale of a request: an explicit ?lang wins,
// then the cookie, then Accept-Language, then English
func requestLocale(w http.ResponseWriter, r *http.Request, logger *zap.Logger) domain.Locale {
	if l, ok := domain.ParseLocale(r.URL.Query().Get("lang")); ok {
		return l
	}
	return localeStore(w, r, logger).Get()
}
