package handler

import (
	"waitlist/internal/domain"
	"waitlist/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// genericError is sent when no session, and so no locale, is available
const genericError = "Something went wrong. Please try again later. / Ocurrió un error. Inténtalo más tarde."

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
		zap.String("language_code", c.Sender().LanguageCode),
	)

	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return c.Send(genericError)
	}

	h.sessions.Reset(userID)
	return h.show(c, sess, "")
}

// handleRestart discards the draft and shows the landing screen again
func (h *Handler) handleRestart(c tele.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return c.Send(genericError)
	}

	h.sessions.Reset(sess.UserID)
	return h.show(c, sess, "")
}

// handleJoin starts the signup form
func (h *Handler) handleJoin(c tele.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return c.Send(genericError)
	}

	if sess.Step() == domain.StepIdle || sess.Step() == domain.StepSuccess {
		sess.SetStep(domain.StepUserType)
	}
	return h.show(c, sess, "")
}

// handleToggleLocale flips the session language and redraws the current step
func (h *Handler) handleToggleLocale(c tele.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return c.Send(genericError)
	}

	l := sess.Locale.Toggle()
	h.logger.Info("Locale switched",
		zap.Int64("user_id", sess.UserID),
		zap.String("locale", string(l)),
		zap.String("step", string(sess.Step())),
	)
	return h.show(c, sess, "")
}

// show draws the session's current step, editing the message behind a
// callback or sending a new one for commands and text
func (h *Handler) show(c tele.Context, sess *service.Session, notice string) error {
	s := screen{
		locale: sess.Locale.Get(),
		step:   sess.Step(),
		draft:  sess.Form.Draft(),
		errors: sess.Form.Errors(),
		notice: notice,
	}
	text, markup := s.render(sess.Translation(h.catalog))

	// Edit message if callback, send new if command
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, sess.UserID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// advance moves past the current step. Once the user has reviewed the
// draft, completing a step returns to the review.
func advance(sess *service.Session) {
	if sess.Reviewed() {
		sess.SetStep(domain.StepReview)
		return
	}
	sess.SetStep(sess.Step().Next())
}
