package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDispatcher struct {
	err      error
	panicMsg string
	payloads []Payload
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, payload Payload) error {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.payloads = append(f.payloads, payload)
	return f.err
}

func testDraft() domain.Draft {
	return domain.Draft{
		FullName:   "Ana Gómez",
		Email:      "ana@example.com",
		Whatsapp:   "+52 123 456 7890",
		UserType:   domain.UserTypeBuyer,
		Country:    "mx",
		Categories: []string{"textiles-apparel"},
	}
}

func TestPipeline_Submit(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name           string
		dispatcher     *fakeDispatcher
		expectedStatus domain.OutcomeStatus
		expectedCalls  int
	}{
		{
			name:           "dispatch succeeds",
			dispatcher:     &fakeDispatcher{},
			expectedStatus: domain.OutcomeSucceeded,
			expectedCalls:  1,
		},
		{
			name:           "dispatch fails",
			dispatcher:     &fakeDispatcher{err: errors.New("network unreachable")},
			expectedStatus: domain.OutcomeFailed,
			expectedCalls:  1,
		},
		{
			name:           "dispatch panics",
			dispatcher:     &fakeDispatcher{panicMsg: "boom"},
			expectedStatus: domain.OutcomeFailed,
			expectedCalls:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(tt.dispatcher, i18n.Default().Reference(), zap.NewNop()).
				WithClock(func() time.Time { return fixed })

			outcome := p.Submit(context.Background(), testDraft())

			assert.Equal(t, tt.expectedStatus, outcome.Status)
			assert.True(t, outcome.Terminal())
			assert.Len(t, tt.dispatcher.payloads, tt.expectedCalls)
			if tt.expectedStatus == domain.OutcomeFailed {
				assert.NotEmpty(t, outcome.Reason)
			}
		})
	}
}

func TestPipeline_SubmitSendsResolvedLabels(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	p := NewPipeline(dispatcher, i18n.Default().Reference(), zap.NewNop())

	p.Submit(context.Background(), testDraft())

	assert.Len(t, dispatcher.payloads, 1)
	assert.Equal(t, "México", dispatcher.payloads[0].Country)
	assert.Equal(t, "Textiles & Apparel", dispatcher.payloads[0].Categories)
	_, err := time.Parse(time.RFC3339, dispatcher.payloads[0].Timestamp)
	assert.NoError(t, err)
}
