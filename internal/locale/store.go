// Package locale keeps the active display language and persists the user's choice.
package locale

import (
	"errors"
	"fmt"
	"sync"

	"waitlist/internal/domain"
	"waitlist/internal/repository"

	"go.uber.org/zap"
)

// StorageKey is the key the chosen locale is persisted under
const StorageKey = "buymyprovider-language"

// ErrUnsupported is returned when setting a locale outside the supported set
var ErrUnsupported = errors.New("unsupported locale")

// Store holds the current locale for one user session.
// Every change is written to the preference repository; write failures are
// logged and otherwise ignored, the in-memory value stays authoritative.
type Store struct {
	repo   repository.PreferenceRepository
	key    string
	logger *zap.Logger

	// writeMu serializes changes; subscribers must not call Set or Toggle
	writeMu sync.Mutex

	mu          sync.RWMutex
	current     domain.Locale
	subscribers []func(domain.Locale)
}

// NewStore loads the persisted locale stored under key. When nothing valid is
// stored, the locale is derived from signal (a language preference such as
// "es-MX") and persisted.
func NewStore(repo repository.PreferenceRepository, key, signal string, logger *zap.Logger) *Store {
	s := &Store{
		repo:   repo,
		key:    key,
		logger: logger,
	}

	if l, ok := s.load(); ok {
		s.current = l
		return s
	}

	s.current = Detect(signal)
	s.persist(s.current)
	return s
}

// Key returns the storage key of this store
func (s *Store) Key() string {
	return s.key
}

// Get returns the active locale
func (s *Store) Get() domain.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set activates l and persists it before returning
func (s *Store) Set(l domain.Locale) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupported, l)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.apply(l)
	return nil
}

// Toggle flips between the two supported locales and returns the new one
func (s *Store) Toggle() domain.Locale {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Get().Other()
	s.apply(next)
	return next
}

// apply switches, persists and notifies. Callers hold writeMu.
func (s *Store) apply(l domain.Locale) {
	s.mu.Lock()
	changed := s.current != l
	s.current = l
	subscribers := append([]func(domain.Locale){}, s.subscribers...)
	s.mu.Unlock()

	s.persist(l)

	if changed {
		for _, fn := range subscribers {
			fn(l)
		}
	}
}

// Subscribe registers fn to be called after every locale change
func (s *Store) Subscribe(fn func(domain.Locale)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) load() (domain.Locale, bool) {
	value, found, err := s.repo.GetPreference(s.key)
	if err != nil {
		s.logger.Debug("Failed to read persisted locale",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return "", false
	}
	if !found {
		return "", false
	}

	l, ok := domain.ParseLocale(value)
	if !ok {
		s.logger.Debug("Ignoring invalid persisted locale",
			zap.String("key", s.key),
			zap.String("value", value),
		)
	}
	return l, ok
}

func (s *Store) persist(l domain.Locale) {
	if err := s.repo.SetPreference(s.key, string(l)); err != nil {
		s.logger.Debug("Failed to persist locale",
			zap.String("key", s.key),
			zap.String("locale", string(l)),
			zap.Error(err),
		)
	}
}
