package testutil

import (
	"context"
	"sync"

	"waitlist/internal/submission"

	"github.com/stretchr/testify/mock"
)

// MockPreferenceRepository is a mock for PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetPreference(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockPreferenceRepository) SetPreference(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockPreferenceRepository) CleanStalePreferences(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockDispatcher is a mock for submission.Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, payload submission.Payload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MemoryPreferences is an in-memory PreferenceRepository that can be told to fail writes
type MemoryPreferences struct {
	mu        sync.Mutex
	values    map[string]string
	FailWrite bool
	FailRead  bool
}

// NewMemoryPreferences creates an empty in-memory store
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (m *MemoryPreferences) GetPreference(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRead {
		return "", false, ErrStorage
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryPreferences) SetPreference(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrite {
		return ErrStorage
	}
	m.values[key] = value
	return nil
}

func (m *MemoryPreferences) CleanStalePreferences(days int) error {
	return nil
}

// Value returns the raw stored value for key
func (m *MemoryPreferences) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}
