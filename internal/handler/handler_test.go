package handler

import (
	"errors"
	"testing"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"
	"waitlist/internal/middleware"
	"waitlist/internal/service"
	"waitlist/internal/submission"
	"waitlist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type botFixture struct {
	bot        *tele.Bot
	api        *testutil.TelegramAPI
	sessions   *service.SessionService
	dispatcher *testutil.MockDispatcher
	user       *tele.User
	chat       *tele.Chat
}

func newBotFixture(t *testing.T, languageCode string) *botFixture {
	api := testutil.NewTelegramAPI(t)
	bot, err := tele.NewBot(tele.Settings{URL: api.URL, Token: "test", Offline: true, Synchronous: true})
	require.NoError(t, err)

	logger := testutil.NewTestLogger()
	dispatcher := new(testutil.MockDispatcher)
	pipeline := submission.NewPipeline(dispatcher, i18n.Default().Reference(), logger)
	sessions := service.NewSessionService(testutil.NewMemoryPreferences(), i18n.Default(), pipeline, logger)

	bot.Use(middleware.SessionMiddleware(sessions, logger))
	NewHandler(bot, sessions, i18n.Default(), logger).RegisterHandlers()

	return &botFixture{
		bot:        bot,
		api:        api,
		sessions:   sessions,
		dispatcher: dispatcher,
		user:       &tele.User{ID: 42, LanguageCode: languageCode},
		chat:       &tele.Chat{ID: 42, Type: tele.ChatPrivate},
	}
}

func (f *botFixture) text(s string) {
	f.bot.ProcessUpdate(tele.Update{Message: &tele.Message{ID: 1, Text: s, Sender: f.user, Chat: f.chat}})
}

func (f *botFixture) press(unique string, data string) {
	payload := "\f" + unique
	if data != "" {
		payload += "|" + data
	}
	f.bot.ProcessUpdate(tele.Update{Callback: &tele.Callback{
		ID:      "cb",
		Sender:  f.user,
		Data:    payload,
		Message: &tele.Message{ID: 7, Chat: f.chat},
	}})
}

func (f *botFixture) session(t *testing.T) *service.Session {
	sess, err := f.sessions.Get(f.user.ID, f.user.LanguageCode)
	require.NoError(t, err)
	return sess
}

func (f *botFixture) lastText(t *testing.T) string {
	texts := f.api.Texts()
	require.NotEmpty(t, texts)
	return texts[len(texts)-1]
}

func (f *botFixture) fillForm(t *testing.T) {
	f.text("/start")
	f.press("join", "")
	f.press("user_type", "buyer")
	f.text("  Ana Gómez ")
	f.press("skip", "")
	f.text("ana@example.com")
	f.text("+52 123 456 7890")
	f.press("country", "mx")
	f.press("category", "textiles-apparel")
	f.press("done", "")
	require.Equal(t, domain.StepReview, f.session(t).Step())
}

func TestHandler_Start(t *testing.T) {
	f := newBotFixture(t, "es-MX")

	f.text("/start")

	es := i18n.Default().Resolve(domain.Spanish)
	assert.Contains(t, f.lastText(t), es.Hero.Headline.Line1Highlight)
	assert.Equal(t, domain.StepIdle, f.session(t).Step())
}

func TestHandler_SignupSucceeds(t *testing.T) {
	f := newBotFixture(t, "en")
	f.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(p submission.Payload) bool {
		return p.FullName == "Ana Gómez" &&
			p.CompanyName == "" &&
			p.Country == "México" &&
			p.Categories == "Textiles & Apparel" &&
			p.UserType == "buyer"
	})).Return(nil).Once()

	f.fillForm(t)
	f.press("submit", "")

	en := i18n.Default().Resolve(domain.English)
	sess := f.session(t)
	assert.Equal(t, domain.StepSuccess, sess.Step())
	assert.Equal(t, domain.NewDraft(), sess.Form.Draft())
	assert.Contains(t, f.lastText(t), en.Success.Title)
	assert.Contains(t, f.api.Texts(), en.Form.SubmittingLabel)
	f.dispatcher.AssertExpectations(t)
}

func TestHandler_SignupFailureKeepsDraft(t *testing.T) {
	f := newBotFixture(t, "es")
	f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("network down")).Once()

	f.fillForm(t)
	before := f.session(t).Form.Draft()
	f.press("submit", "")

	es := i18n.Default().Resolve(domain.Spanish)
	sess := f.session(t)
	assert.Equal(t, domain.StepReview, sess.Step())
	assert.Equal(t, before, sess.Form.Draft())
	assert.Contains(t, f.lastText(t), es.Form.ErrorMessage)
	f.dispatcher.AssertExpectations(t)
}

func TestHandler_InvalidTextRepeatsStep(t *testing.T) {
	f := newBotFixture(t, "en")
	f.text("/start")
	f.press("join", "")
	f.press("user_type", "supplier")

	f.text("A")

	en := i18n.Default().Resolve(domain.English)
	assert.Equal(t, domain.StepFullName, f.session(t).Step())
	assert.Contains(t, f.lastText(t), en.Form.Validation.FullName)

	f.text("Al")
	assert.Equal(t, domain.StepCompanyName, f.session(t).Step())
}

func TestHandler_ToggleLocaleRerendersError(t *testing.T) {
	f := newBotFixture(t, "en")
	f.text("/start")
	f.press("join", "")
	f.press("user_type", "buyer")
	f.text("Ana Gómez")
	f.press("skip", "")
	f.text("not an email")
	require.Equal(t, domain.StepEmail, f.session(t).Step())

	f.press("lang", "")

	es := i18n.Default().Resolve(domain.Spanish)
	sess := f.session(t)
	assert.Equal(t, domain.Spanish, sess.Locale.Get())
	assert.Equal(t, domain.StepEmail, sess.Step())
	assert.Contains(t, f.lastText(t), es.Form.EmailLabel)
	assert.Contains(t, f.lastText(t), es.Form.Validation.Email)
}

func TestHandler_CategoriesRequired(t *testing.T) {
	f := newBotFixture(t, "en")
	f.text("/start")
	f.press("join", "")
	f.press("user_type", "buyer")
	f.text("Ana Gómez")
	f.press("skip", "")
	f.text("ana@example.com")
	f.text("+52 123 456 7890")
	f.press("country", "co")

	f.press("done", "")

	en := i18n.Default().Resolve(domain.English)
	assert.Equal(t, domain.StepCategories, f.session(t).Step())
	assert.Contains(t, f.lastText(t), en.Form.Validation.Categories)

	f.press("category", "other")
	f.press("category", "toys-games")
	f.press("category", "other")
	f.press("done", "")

	sess := f.session(t)
	assert.Equal(t, domain.StepReview, sess.Step())
	assert.Equal(t, []string{"toys-games"}, sess.Form.Draft().Categories)
}

func TestHandler_StaleButtonRedrawsCurrentStep(t *testing.T) {
	f := newBotFixture(t, "en")
	f.text("/start")
	f.press("join", "")

	f.press("country", "mx")

	sess := f.session(t)
	assert.Equal(t, domain.StepUserType, sess.Step())
	assert.Empty(t, sess.Form.Draft().Country)
}

func TestHandler_TextOnChoiceStep(t *testing.T) {
	f := newBotFixture(t, "en")
	f.text("/start")
	f.press("join", "")

	f.text("buyer")

	en := i18n.Default().Resolve(domain.English)
	assert.Contains(t, f.lastText(t), en.Bot.UseButtons)
	assert.Equal(t, domain.StepUserType, f.session(t).Step())
}

func TestHandler_EditFromReviewReturnsToReview(t *testing.T) {
	f := newBotFixture(t, "en")
	f.fillForm(t)

	sess := f.session(t)
	require.NoError(t, sess.Form.SetText(domain.FieldEmail, "broken"))
	f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Maybe()

	f.press("submit", "")

	en := i18n.Default().Resolve(domain.English)
	assert.Equal(t, domain.StepEmail, sess.Step())
	assert.Contains(t, f.lastText(t), en.Bot.FixErrors)
	assert.Contains(t, f.lastText(t), en.Form.Validation.Email)

	f.text("ana@example.com")
	assert.Equal(t, domain.StepReview, sess.Step())
	f.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
