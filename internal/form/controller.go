// Package form holds the state of one waitlist signup: field values,
// selections, displayed errors and the submission guard.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"
	"waitlist/internal/validation"
)

var (
	// ErrSubmitInFlight is returned when submit is called while a previous
	// submission has not resolved
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrInvalid is returned when the draft fails validation; see Errors
	ErrInvalid = errors.New("form has validation errors")
	// ErrNotTextField is returned by SetText for selection fields
	ErrNotTextField = errors.New("not a text field")
)

// Submitter delivers a validated draft
type Submitter interface {
	Submit(ctx context.Context, d domain.Draft) domain.Outcome
}

// Controller is safe for concurrent use. Only one submission can be in
// flight at a time.
type Controller struct {
	catalog   *i18n.Catalog
	submitter Submitter

	mu         sync.Mutex
	locale     domain.Locale
	schema     *validation.Schema
	draft      domain.Draft
	errors     domain.ValidationResult
	submitted  bool
	submitting bool
	outcome    domain.Outcome
}

// NewController creates an empty form whose messages are in locale l
func NewController(catalog *i18n.Catalog, submitter Submitter, l domain.Locale) (*Controller, error) {
	schema, err := validation.ForLocale(catalog, l)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return &Controller{
		catalog:   catalog,
		submitter: submitter,
		locale:    l,
		schema:    schema,
		draft:     domain.NewDraft(),
		errors:    domain.ValidationResult{},
	}, nil
}

// Locale returns the locale of the current schema
func (c *Controller) Locale() domain.Locale {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locale
}

// Draft returns a copy of the current values
func (c *Controller) Draft() domain.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Errors returns a copy of the errors currently displayed
func (c *Controller) Errors() domain.ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyResult(c.errors)
}

// Submitting reports whether a submission is in flight
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Outcome returns the state of the latest submission attempt
func (c *Controller) Outcome() domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// SetLocale rebuilds the schema for l. Errors on display are re-rendered
// in the new locale; the set of invalid fields does not change.
func (c *Controller) SetLocale(l domain.Locale) error {
	schema, err := validation.ForLocale(c.catalog, l)
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.locale = l
	c.schema = schema

	if len(c.errors) == 0 {
		return nil
	}
	fresh := c.schema.Validate(c.draft)
	for field := range c.errors {
		if msg, ok := fresh[field]; ok {
			c.errors[field] = msg
		}
	}
	return nil
}

// SetText binds a free-text field
func (c *Controller) SetText(field domain.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case domain.FieldFullName:
		c.draft.FullName = value
	case domain.FieldCompanyName:
		c.draft.CompanyName = value
	case domain.FieldEmail:
		c.draft.Email = value
	case domain.FieldWhatsapp:
		c.draft.Whatsapp = value
	default:
		return fmt.Errorf("%w: %s", ErrNotTextField, field)
	}

	if c.submitted {
		c.revalidate(field)
	}
	return nil
}

// SetUserType replaces the user type
func (c *Controller) SetUserType(t domain.UserType) error {
	if !t.Valid() {
		return fmt.Errorf("invalid user type %q", t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.UserType = t
	c.revalidate(domain.FieldUserType)
	return nil
}

// SetCountry replaces the selected country code
func (c *Controller) SetCountry(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Country = code
	c.revalidate(domain.FieldCountry)
}

// ToggleCategory adds code when absent and removes it when present.
// Remaining categories keep their selection order.
func (c *Controller) ToggleCategory(code string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.Categories = toggle(c.draft.Categories, code)
	c.revalidate(domain.FieldCategories)
	return append([]string{}, c.draft.Categories...)
}

// Load replaces the whole draft with its normalized form
func (c *Controller) Load(d domain.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d = d.Normalize()
	if d.UserType == "" {
		d.UserType = domain.UserTypeBuyer
	}
	c.draft = d
}

// Validate runs the schema and displays every failure
func (c *Controller) Validate() domain.ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors = c.schema.Validate(c.draft)
	return copyResult(c.errors)
}

// FieldError validates the draft and returns the message for field, if any.
// Only field's displayed error is updated.
func (c *Controller) FieldError(field domain.Field) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.revalidate(field)
	msg, ok := c.errors[field]
	return msg, ok
}

// Reset discards the draft and displayed errors
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Submit validates the draft and hands it to the submitter. Invalid drafts
// return ErrInvalid without dispatching. On success the form is reset; on
// failure the draft is kept so the user can retry.
func (c *Controller) Submit(ctx context.Context) (domain.Outcome, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return domain.Outcome{Status: domain.OutcomePending}, ErrSubmitInFlight
	}

	c.submitted = true
	c.errors = c.schema.Validate(c.draft)
	if !c.errors.Valid() {
		c.mu.Unlock()
		return domain.Outcome{}, ErrInvalid
	}

	c.submitting = true
	c.outcome = domain.Outcome{Status: domain.OutcomePending}
	snapshot := c.draft.Clone()
	c.mu.Unlock()

	outcome := c.submitter.Submit(ctx, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	c.outcome = outcome
	if outcome.Status == domain.OutcomeSucceeded {
		c.reset()
	}
	return outcome, nil
}

func (c *Controller) reset() {
	c.draft = domain.NewDraft()
	c.errors = domain.ValidationResult{}
	c.submitted = false
}

// revalidate refreshes the displayed error of one field. Caller holds mu.
func (c *Controller) revalidate(field domain.Field) {
	fresh := c.schema.Validate(c.draft)
	if msg, ok := fresh[field]; ok {
		c.errors[field] = msg
		return
	}
	delete(c.errors, field)
}

func toggle(values []string, code string) []string {
	out := make([]string, 0, len(values)+1)
	found := false
	for _, v := range values {
		if v == code {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, code)
	}
	return out
}

func copyResult(r domain.ValidationResult) domain.ValidationResult {
	out := make(domain.ValidationResult, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
