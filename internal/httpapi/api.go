// Package httpapi serves the translation catalog, validation and waitlist
// submission over HTTP.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/form"
	"waitlist/internal/i18n"
	"waitlist/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// API holds the dependencies of the HTTP handlers
type API struct {
	catalog   *i18n.Catalog
	schemas   map[domain.Locale]*validation.Schema
	submitter form.Submitter
	logger    *zap.Logger
}

// New builds one validation schema per catalog locale
func New(catalog *i18n.Catalog, submitter form.Submitter, logger *zap.Logger) (*API, error) {
	schemas := make(map[domain.Locale]*validation.Schema)
	for _, l := range catalog.Locales() {
		schema, err := validation.ForLocale(catalog, l)
		if err != nil {
			return nil, fmt.Errorf("build %s schema: %w", l, err)
		}
		schemas[l] = schema
	}

	return &API{
		catalog:   catalog,
		schemas:   schemas,
		submitter: submitter,
		logger:    logger,
	}, nil
}

// Routes returns the router with all endpoints registered
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/translations", a.getTranslations)
		r.Get("/translations/{locale}", a.getTranslationsFor)
		r.Put("/locale", a.putLocale)
		r.Post("/validate", a.validate)
		r.Post("/waitlist", a.submit)
	})

	return r
}

// requestLogger logs every request once it completes
func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		a.logger.Info("HTTP request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (a *API) getTranslations(w http.ResponseWriter, r *http.Request) {
	l := requestLocale(w, r, a.logger)
	w.Header().Set("Content-Language", string(l))
	a.writeJSON(w, http.StatusOK, a.catalog.Resolve(l))
}

func (a *API) getTranslationsFor(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "locale")
	l, ok := domain.ParseLocale(raw)
	if !ok {
		a.writeError(w, http.StatusNotFound, "UNKNOWN_LOCALE", "unknown locale: "+raw)
		return
	}
	t, err := a.catalog.Lookup(l)
	if err != nil {
		a.writeError(w, http.StatusNotFound, "UNKNOWN_LOCALE", err.Error())
		return
	}
	w.Header().Set("Content-Language", string(l))
	a.writeJSON(w, http.StatusOK, t)
}

type localeRequest struct {
	Locale string `json:"locale"`
}

func (a *API) putLocale(w http.ResponseWriter, r *http.Request) {
	var req localeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	l, ok := domain.ParseLocale(req.Locale)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "UNKNOWN_LOCALE", "unknown locale: "+req.Locale)
		return
	}

	store := localeStore(w, r, a.logger)
	if err := store.Set(l); err != nil {
		a.writeError(w, http.StatusBadRequest, "UNKNOWN_LOCALE", err.Error())
		return
	}

	w.Header().Set("Content-Language", string(l))
	a.writeJSON(w, http.StatusOK, localeRequest{Locale: string(l)})
}

type validationResponse struct {
	Valid  bool                    `json:"valid"`
	Errors domain.ValidationResult `json:"errors"`
}

func (a *API) validate(w http.ResponseWriter, r *http.Request) {
	d, ok := a.decodeDraft(w, r)
	if !ok {
		return
	}

	l := requestLocale(w, r, a.logger)
	result := a.schema(l).Validate(d)
	w.Header().Set("Content-Language", string(l))
	a.writeJSON(w, http.StatusOK, validationResponse{Valid: result.Valid(), Errors: result})
}

type submitResponse struct {
	Outcome domain.OutcomeStatus `json:"outcome"`
	Message string               `json:"message,omitempty"`
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	d, ok := a.decodeDraft(w, r)
	if !ok {
		return
	}

	l := requestLocale(w, r, a.logger)
	w.Header().Set("Content-Language", string(l))

	result := a.schema(l).Validate(d)
	if !result.Valid() {
		a.writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Valid: false, Errors: result})
		return
	}

	outcome := a.submitter.Submit(r.Context(), d)
	if outcome.Status != domain.OutcomeSucceeded {
		a.writeJSON(w, http.StatusBadGateway, submitResponse{
			Outcome: domain.OutcomeFailed,
			Message: a.catalog.Resolve(l).Form.ErrorMessage,
		})
		return
	}
	a.writeJSON(w, http.StatusAccepted, submitResponse{Outcome: domain.OutcomeSucceeded})
}

// decodeDraft reads and normalizes a draft body. A missing userType defaults to buyer.
func (a *API) decodeDraft(w http.ResponseWriter, r *http.Request) (domain.Draft, bool) {
	var d domain.Draft
	if err := decodeJSON(w, r, &d); err != nil {
		a.writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return domain.Draft{}, false
	}
	d = d.Normalize()
	if d.UserType == "" {
		d.UserType = domain.UserTypeBuyer
	}
	return d, true
}

func (a *API) schema(l domain.Locale) *validation.Schema {
	if s, ok := a.schemas[l]; ok {
		return s
	}
	return a.schemas[i18n.ReferenceLocale]
}
