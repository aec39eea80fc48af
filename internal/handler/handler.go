package handler

import (
	"waitlist/internal/i18n"
	"waitlist/internal/middleware"
	"waitlist/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	sessions *service.SessionService
	catalog  *i18n.Catalog
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	sessions *service.SessionService,
	catalog *i18n.Catalog,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers. Middleware must be added
// with bot.Use before calling it.
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnJoin, h.handleJoin)
	h.bot.Handle(&btnLang, h.handleToggleLocale)
	h.bot.Handle(&btnUserType, h.handleUserType)
	h.bot.Handle(&btnSkip, h.handleSkip)
	h.bot.Handle(&btnCountry, h.handleCountry)
	h.bot.Handle(&btnCategory, h.handleCategory)
	h.bot.Handle(&btnDone, h.handleCategoriesDone)
	h.bot.Handle(&btnSubmit, h.handleSubmit)
	h.bot.Handle(&btnRestart, h.handleRestart)

	// Generic callback handler for buttons whose unique did not come through
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// session returns the sender's session, preferring the one attached by middleware
func (h *Handler) session(c tele.Context) (*service.Session, error) {
	if sess := middleware.Session(c); sess != nil {
		return sess, nil
	}
	return h.sessions.Get(c.Sender().ID, c.Sender().LanguageCode)
}

// Inline keyboard buttons. Texts depend on the session locale and are set at render time.
var (
	btnJoin     = tele.Btn{Unique: "join"}
	btnLang     = tele.Btn{Unique: "lang"}
	btnUserType = tele.Btn{Unique: "user_type"}
	btnSkip     = tele.Btn{Unique: "skip"}
	btnCountry  = tele.Btn{Unique: "country"}
	btnCategory = tele.Btn{Unique: "category"}
	btnDone     = tele.Btn{Unique: "done"}
	btnSubmit   = tele.Btn{Unique: "submit"}
	btnRestart  = tele.Btn{Unique: "restart"}
)
