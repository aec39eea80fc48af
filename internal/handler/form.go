package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles text messages depending on the current step
func (h *Handler) handleText(c tele.Context) error {
	sess, err := h.session(c)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err))
		return c.Send(genericError)
	}

	step := sess.Step()
	field, ok := step.Field()
	if !ok || !step.TextInput() {
		return h.show(c, sess, sess.Translation(h.catalog).Bot.UseButtons)
	}

	if err := sess.Form.SetText(field, strings.TrimSpace(c.Text())); err != nil {
		h.logger.Error("Failed to set field",
			zap.Int64("user_id", sess.UserID),
			zap.String("field", string(field)),
			zap.Error(err),
		)
		return c.Send(genericError)
	}

	if _, invalid := sess.Form.FieldError(field); invalid {
		h.logger.Debug("Rejected field input",
			zap.Int64("user_id", sess.UserID),
			zap.String("field", string(field)),
		)
		return h.show(c, sess, "")
	}

	advance(sess)
	return h.show(c, sess, "")
}
