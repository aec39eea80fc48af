package middleware

import (
	"waitlist/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const sessionKey = "session"

// SessionProvider returns the session of a chat user
type SessionProvider interface {
	Get(userID int64, languageCode string) (*service.Session, error)
}

// SessionMiddleware attaches the sender's session to the context
func SessionMiddleware(sessions SessionProvider, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			sess, err := sessions.Get(sender.ID, sender.LanguageCode)
			if err != nil {
				logger.Error("Failed to load session in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return c.Send("Something went wrong. Please try again later. / Ocurrió un error. Inténtalo más tarde.")
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// Session returns the session attached by SessionMiddleware, or nil
func Session(c tele.Context) *service.Session {
	sess, _ := c.Get(sessionKey).(*service.Session)
	return sess
}
