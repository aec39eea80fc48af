package testutil

import (
	"errors"

	"waitlist/internal/domain"

	"go.uber.org/zap"
)

// ErrStorage is returned by MemoryPreferences when told to fail
var ErrStorage = errors.New("storage unavailable")

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewValidDraft returns a draft that passes validation
func NewValidDraft() domain.Draft {
	return domain.Draft{
		FullName:   "Ana Gómez",
		Email:      "ana@example.com",
		Whatsapp:   "+52 123 456 7890",
		UserType:   domain.UserTypeBuyer,
		Country:    "mx",
		Categories: []string{"textiles-apparel"},
	}
}
