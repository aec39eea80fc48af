package handler

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"waitlist/internal/domain"
	"waitlist/internal/form"
	"waitlist/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it means it was already edited by another callback
	// Just acknowledge and return nil - don't send new message
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callback queries that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	unique, payload, _ := strings.Cut(data, "|")
	if callback.Unique == "" {
		callback.Unique = unique
		callback.Data = payload
	}

	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch callback.Unique {
	case btnJoin.Unique:
		return h.handleJoin(c)
	case btnLang.Unique:
		return h.handleToggleLocale(c)
	case btnUserType.Unique:
		return h.handleUserType(c)
	case btnSkip.Unique:
		return h.handleSkip(c)
	case btnCountry.Unique:
		return h.handleCountry(c)
	case btnCategory.Unique:
		return h.handleCategory(c)
	case btnDone.Unique:
		return h.handleCategoriesDone(c)
	case btnSubmit.Unique:
		return h.handleSubmit(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// callbackSession loads the session and checks the button belongs to the
// current step. Stale buttons redraw the current step instead.
func (h *Handler) callbackSession(c tele.Context, step domain.Step) (*service.Session, bool, error) {
	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return nil, false, c.Send(genericError)
	}
	if sess.Step() != step {
		h.logger.Debug("Ignoring stale button",
			zap.Int64("user_id", sess.UserID),
			zap.String("expected_step", string(step)),
			zap.String("step", string(sess.Step())),
		)
		return sess, false, h.show(c, sess, "")
	}
	return sess, true, nil
}

// handleUserType selects buyer or supplier
func (h *Handler) handleUserType(c tele.Context) error {
	sess, ok, err := h.callbackSession(c, domain.StepUserType)
	if !ok {
		return err
	}

	userType := domain.UserType(cleanCallbackData(c.Callback().Data))
	if err := sess.Form.SetUserType(userType); err != nil {
		h.logger.Warn("Invalid user type", zap.String("user_type", string(userType)))
		return h.show(c, sess, sess.Translation(h.catalog).Bot.UseButtons)
	}

	advance(sess)
	return h.show(c, sess, "")
}

// handleSkip leaves the optional company name empty
func (h *Handler) handleSkip(c tele.Context) error {
	sess, ok, err := h.callbackSession(c, domain.StepCompanyName)
	if !ok {
		return err
	}

	if err := sess.Form.SetText(domain.FieldCompanyName, ""); err != nil {
		return err
	}

	advance(sess)
	return h.show(c, sess, "")
}

// handleCountry selects the country
func (h *Handler) handleCountry(c tele.Context) error {
	sess, ok, err := h.callbackSession(c, domain.StepCountry)
	if !ok {
		return err
	}

	sess.Form.SetCountry(cleanCallbackData(c.Callback().Data))
	if _, invalid := sess.Form.FieldError(domain.FieldCountry); invalid {
		return h.show(c, sess, "")
	}

	advance(sess)
	return h.show(c, sess, "")
}

// handleCategory toggles one category and redraws the list
func (h *Handler) handleCategory(c tele.Context) error {
	sess, ok, err := h.callbackSession(c, domain.StepCategories)
	if !ok {
		return err
	}

	sess.Form.ToggleCategory(cleanCallbackData(c.Callback().Data))
	return h.show(c, sess, "")
}

// handleCategoriesDone leaves the category list once at least one is selected
func (h *Handler) handleCategoriesDone(c tele.Context) error {
	sess, ok, err := h.callbackSession(c, domain.StepCategories)
	if !ok {
		return err
	}

	if _, invalid := sess.Form.FieldError(domain.FieldCategories); invalid {
		return h.show(c, sess, "")
	}

	advance(sess)
	return h.show(c, sess, "")
}

// handleSubmit sends the reviewed draft
func (h *Handler) handleSubmit(c tele.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return c.Send(genericError)
	}

	// Only one press may leave the review step
	if !sess.CompareAndSetStep(domain.StepReview, domain.StepSubmitting) {
		if sess.Form.Submitting() || sess.Step() == domain.StepSubmitting {
			return c.Respond(&tele.CallbackResponse{Text: sess.Translation(h.catalog).Bot.BusyMessage})
		}
		return h.show(c, sess, "")
	}

	s := screen{locale: sess.Locale.Get(), step: domain.StepSubmitting}
	text, markup := s.render(sess.Translation(h.catalog))
	if err := c.Edit(text, markup); err != nil {
		h.logger.Debug("Failed to show submitting state", zap.Error(err))
	}

	outcome, err := sess.Form.Submit(context.Background())
	t := sess.Translation(h.catalog)

	switch {
	case errors.Is(err, form.ErrSubmitInFlight):
		return c.Respond(&tele.CallbackResponse{Text: t.Bot.BusyMessage})
	case errors.Is(err, form.ErrInvalid):
		first, _ := sess.Form.Errors().First()
		sess.SetStep(domain.StepFor(first))
		return h.show(c, sess, t.Bot.FixErrors)
	case err != nil:
		h.logger.Error("Failed to submit form", zap.Int64("user_id", sess.UserID), zap.Error(err))
		sess.SetStep(domain.StepReview)
		return h.show(c, sess, t.Form.ErrorMessage)
	}

	if outcome.Status != domain.OutcomeSucceeded {
		sess.SetStep(domain.StepReview)
		return h.show(c, sess, t.Form.ErrorMessage)
	}

	sess.SetStep(domain.StepSuccess)
	return h.show(c, sess, "")
}
