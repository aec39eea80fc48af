// Package submission turns a validated draft into one webhook delivery.
package submission

import (
	"context"
	"fmt"
	"time"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pipeline resolves labels, builds the payload and dispatches it once.
// There is no retry; a failed attempt is reported and left to the user.
type Pipeline struct {
	dispatcher Dispatcher
	reference  *i18n.Translation
	logger     *zap.Logger
	now        func() time.Time
}

// NewPipeline creates a pipeline that labels payloads with reference
func NewPipeline(dispatcher Dispatcher, reference *i18n.Translation, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		dispatcher: dispatcher,
		reference:  reference,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the timestamp source
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Submit dispatches d and resolves to succeeded when the request was sent
// without error, failed otherwise. Success says nothing about whether the
// remote side stored the row.
func (p *Pipeline) Submit(ctx context.Context, d domain.Draft) (outcome domain.Outcome) {
	id := uuid.NewString()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			outcome = domain.Failed(fmt.Sprintf("panic during dispatch: %v", r))
		}
		dispatchDuration.Observe(time.Since(start).Seconds())
		submissionsTotal.WithLabelValues(string(outcome.Status)).Inc()

		if outcome.Status == domain.OutcomeSucceeded {
			p.logger.Info("Waitlist submission dispatched",
				zap.String("submission_id", id),
				zap.String("user_type", string(d.UserType)),
				zap.String("country", d.Country),
				zap.Int("categories", len(d.Categories)),
			)
			return
		}
		p.logger.Error("Waitlist submission failed",
			zap.String("submission_id", id),
			zap.String("reason", outcome.Reason),
		)
	}()

	payload := BuildPayload(d, p.reference, p.now())

	if err := p.dispatcher.Dispatch(ctx, payload); err != nil {
		return domain.Failed(err.Error())
	}
	return domain.Succeeded()
}
