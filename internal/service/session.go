package service

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/form"
	"waitlist/internal/i18n"
	"waitlist/internal/locale"
	"waitlist/internal/repository"

	"go.uber.org/zap"
)

// Session is one chat user's signup in progress
type Session struct {
	UserID int64
	Locale *locale.Store
	Form   *form.Controller

	mu       sync.Mutex
	step     domain.Step
	reviewed bool
	lastSeen time.Time
}

// Step returns the user's position in the signup flow
func (s *Session) Step() domain.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SetStep moves the user to step. Reaching the review step marks the
// session as reviewed until it returns to idle or succeeds.
func (s *Session) SetStep(step domain.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = step
	switch step {
	case domain.StepReview:
		s.reviewed = true
	case domain.StepIdle, domain.StepSuccess:
		s.reviewed = false
	}
}

// CompareAndSetStep moves to next only when the session is still at from.
// It reports whether the move happened.
func (s *Session) CompareAndSetStep(from, next domain.Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != from {
		return false
	}
	s.step = next
	return true
}

// Reviewed reports whether the user has seen the review step since starting
func (s *Session) Reviewed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviewed
}

// Translation returns the tree for the session's active locale
func (s *Session) Translation(catalog *i18n.Catalog) *i18n.Translation {
	return catalog.Resolve(s.Locale.Get())
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// PreferenceKey returns the storage key of a chat user's locale
func PreferenceKey(userID int64) string {
	return locale.StorageKey + ":" + strconv.FormatInt(userID, 10)
}

// SessionService keeps chat sessions in memory
type SessionService struct {
	prefRepo  repository.PreferenceRepository
	catalog   *i18n.Catalog
	submitter form.Submitter
	logger    *zap.Logger
	now       func() time.Time

	sessions map[int64]*Session
	mu       sync.RWMutex
}

// NewSessionService creates a new session service
func NewSessionService(
	prefRepo repository.PreferenceRepository,
	catalog *i18n.Catalog,
	submitter form.Submitter,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		prefRepo:  prefRepo,
		catalog:   catalog,
		submitter: submitter,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[int64]*Session),
	}
}

// Get returns the user's session, creating it on first contact.
// languageCode is the client's language and is only used when the user has
// no stored locale.
func (s *SessionService) Get(userID int64, languageCode string) (*Session, error) {
	s.mu.RLock()
	sess, exists := s.sessions[userID]
	s.mu.RUnlock()
	if exists {
		sess.touch(s.now())
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, exists := s.sessions[userID]; exists {
		sess.touch(s.now())
		return sess, nil
	}

	store := locale.NewStore(s.prefRepo, PreferenceKey(userID), languageCode, s.logger)
	controller, err := form.NewController(s.catalog, s.submitter, store.Get())
	if err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}
	store.Subscribe(func(l domain.Locale) {
		if err := controller.SetLocale(l); err != nil {
			s.logger.Error("Failed to switch form locale",
				zap.Int64("user_id", userID),
				zap.String("locale", string(l)),
				zap.Error(err),
			)
		}
	})

	sess = &Session{
		UserID:   userID,
		Locale:   store,
		Form:     controller,
		step:     domain.StepIdle,
		lastSeen: s.now(),
	}
	s.sessions[userID] = sess

	s.logger.Debug("Session created",
		zap.Int64("user_id", userID),
		zap.String("locale", string(store.Get())),
	)
	return sess, nil
}

// Reset discards the user's draft and returns them to the start.
// The locale is kept.
func (s *SessionService) Reset(userID int64) {
	s.mu.RLock()
	sess, exists := s.sessions[userID]
	s.mu.RUnlock()
	if !exists {
		return
	}
	sess.Form.Reset()
	sess.SetStep(domain.StepIdle)
}

// Count returns the number of live sessions
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ExpireIdle drops sessions unused for longer than ttl. Sessions with a
// submission in flight are kept. Returns the number removed.
func (s *SessionService) ExpireIdle(ttl time.Duration) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, sess := range s.sessions {
		if sess.idleSince(now) <= ttl || sess.Form.Submitting() {
			continue
		}
		delete(s.sessions, userID)
		removed++
	}

	if removed > 0 {
		s.logger.Info("Expired idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", len(s.sessions)),
		)
	}
	return removed
}
