package handler

import (
	"fmt"
	"strings"

	"waitlist/internal/domain"
	"waitlist/internal/i18n"

	tele "gopkg.in/telebot.v3"
)

// contactEmail is shown under the success screen
const contactEmail = "buymyprovider@spiderhat.com"

const (
	markSelected   = "✅ "
	markUnselected = "▫️ "
	markError      = "⚠️ "
)

// screen is everything needed to draw one step of the flow
type screen struct {
	locale domain.Locale
	step   domain.Step
	draft  domain.Draft
	errors domain.ValidationResult
	notice string
}

// render returns the message text and keyboard for s in translation t
func (s screen) render(t *i18n.Translation) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	var (
		text string
		rows []tele.Row
	)

	switch s.step {
	case domain.StepUserType:
		text, rows = s.userType(t, markup)
	case domain.StepFullName:
		text = s.prompt(t.Form.FullNameLabel, t.Form.FullNamePlaceholder, domain.FieldFullName)
	case domain.StepCompanyName:
		text = s.prompt(t.Form.CompanyNameLabel, t.Form.CompanyNamePlaceholder, domain.FieldCompanyName)
		rows = append(rows, markup.Row(markup.Data(t.Bot.SkipLabel, btnSkip.Unique)))
	case domain.StepEmail:
		text = s.prompt(t.Form.EmailLabel, t.Form.EmailPlaceholder, domain.FieldEmail)
	case domain.StepWhatsapp:
		text = s.prompt(t.Form.WhatsappLabel, t.Form.WhatsappPlaceholder, domain.FieldWhatsapp)
	case domain.StepCountry:
		text, rows = s.country(t, markup)
	case domain.StepCategories:
		text, rows = s.categories(t, markup)
	case domain.StepReview:
		text, rows = s.review(t, markup)
	case domain.StepSubmitting:
		text = t.Form.SubmittingLabel
	case domain.StepSuccess:
		text, rows = s.success(t, markup)
	default:
		text, rows = s.hero(t, markup)
	}

	if s.notice != "" {
		text = markError + s.notice + "\n\n" + text
	}

	rows = append(rows, markup.Row(markup.Data(switchLabel(t, s.locale), btnLang.Unique)))
	markup.Inline(rows...)
	return text, markup
}

// switchLabel names the locale the toggle switches to
func switchLabel(t *i18n.Translation, active domain.Locale) string {
	if active == domain.English {
		return t.Common.SwitchToSpanish
	}
	return t.Common.SwitchToEnglish
}

func (s screen) hero(t *i18n.Translation, markup *tele.ReplyMarkup) (string, []tele.Row) {
	h := t.Hero
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", t.Common.Brand)
	fmt.Fprintf(&b, "%s %s\n%s %s\n\n", h.Headline.Line1Prefix, h.Headline.Line1Highlight, h.Headline.Line2Prefix, h.Headline.Line2Highlight)
	fmt.Fprintf(&b, "%s %s\n\n", h.Subheadline, h.SubheadlineHighlight)
	for _, stat := range h.Stats {
		fmt.Fprintf(&b, "• %s: %s\n", stat.Title, stat.Description)
	}
	fmt.Fprintf(&b, "\n%s %s", t.Common.PoweredByPrefix, t.Common.PoweredByHighlight)

	return b.String(), []tele.Row{markup.Row(markup.Data(h.CTA, btnJoin.Unique))}
}

func (s screen) userType(t *i18n.Translation, markup *tele.ReplyMarkup) (string, []tele.Row) {
	f := t.Form
	text := fmt.Sprintf("%s %s\n%s\n\n%s\n\n• %s: %s\n• %s: %s",
		f.TitlePrefix, f.TitleHighlight, f.Description,
		f.UserTypeLabel,
		f.BuyerTitle, f.BuyerDescription,
		f.SupplierTitle, f.SupplierDescription,
	)
	text += s.fieldError(domain.FieldUserType)

	rows := []tele.Row{
		markup.Row(markup.Data(mark(s.draft.UserType == domain.UserTypeBuyer)+f.BuyerTitle, btnUserType.Unique, string(domain.UserTypeBuyer))),
		markup.Row(markup.Data(mark(s.draft.UserType == domain.UserTypeSupplier)+f.SupplierTitle, btnUserType.Unique, string(domain.UserTypeSupplier))),
	}
	return text, rows
}

func (s screen) prompt(label, placeholder string, field domain.Field) string {
	return fmt.Sprintf("%s\n%s", label, placeholder) + s.fieldError(field)
}

func (s screen) country(t *i18n.Translation, markup *tele.ReplyMarkup) (string, []tele.Row) {
	text := fmt.Sprintf("%s\n%s", t.Form.CountryLabel, t.Form.CountryPlaceholder) + s.fieldError(domain.FieldCountry)

	var rows []tele.Row
	var row tele.Row
	for _, opt := range t.Form.CountryOptions {
		label := opt.Label
		if opt.Value == s.draft.Country {
			label = markSelected + label
		}
		row = append(row, markup.Data(label, btnCountry.Unique, opt.Value))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return text, rows
}

func (s screen) categories(t *i18n.Translation, markup *tele.ReplyMarkup) (string, []tele.Row) {
	text := t.Form.CategoriesLabel + s.fieldError(domain.FieldCategories)

	rows := make([]tele.Row, 0, len(t.Form.CategoryOptions)+1)
	for _, opt := range t.Form.CategoryOptions {
		label := mark(s.draft.HasCategory(opt.Value)) + opt.Label
		rows = append(rows, markup.Row(markup.Data(label, btnCategory.Unique, opt.Value)))
	}
	rows = append(rows, markup.Row(markup.Data(t.Bot.DoneLabel, btnDone.Unique)))
	return text, rows
}

func (s screen) review(t *i18n.Translation, markup *tele.ReplyMarkup) (string, []tele.Row) {
	f := t.Form
	d := s.draft

	userType := f.BuyerTitle
	if d.UserType == domain.UserTypeSupplier {
		userType = f.SupplierTitle
	}

	categories := make([]string, len(d.Categories))
	for i, code := range d.Categories {
		categories[i] = i18n.Label(f.CategoryOptions, code)
	}

	lines := []string{
		t.Bot.ReviewTitle,
		"",
		fmt.Sprintf("%s %s", f.UserTypeLabel, userType),
		fmt.Sprintf("%s: %s", fieldName(f.FullNameLabel), orDash(t, d.FullName)),
		fmt.Sprintf("%s: %s", fieldName(f.CompanyNameLabel), orDash(t, d.CompanyName)),
		fmt.Sprintf("%s: %s", fieldName(f.EmailLabel), orDash(t, d.Email)),
		fmt.Sprintf("%s: %s", fieldName(f.WhatsappLabel), orDash(t, d.Whatsapp)),
		fmt.Sprintf("%s: %s", fieldName(f.CountryLabel), orDash(t, i18n.Label(f.CountryOptions, d.Country))),
		fmt.Sprintf("%s: %s", fieldName(f.CategoriesLabel), orDash(t, strings.Join(categories, ", "))),
	}

	rows := []tele.Row{
		markup.Row(markup.Data(f.SubmitLabel, btnSubmit.Unique)),
		markup.Row(markup.Data(t.Bot.StartOverLabel, btnRestart.Unique)),
	}
	return strings.Join(lines, "\n"), rows
}

func (s screen) success(t *i18n.Translation, markup *tele.ReplyMarkup) (string, []tele.Row) {
	sc := t.Success
	var b strings.Builder
	fmt.Fprintf(&b, "🎉 %s\n\n%s\n\n%s\n", sc.Title, sc.Description, sc.WhatsNext)
	for i, step := range sc.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\n%s %s", sc.Contact, contactEmail)

	return b.String(), []tele.Row{markup.Row(markup.Data(sc.BackHome, btnRestart.Unique))}
}

func (s screen) fieldError(field domain.Field) string {
	msg, ok := s.errors[field]
	if !ok {
		return ""
	}
	return "\n\n" + markError + msg
}

func mark(selected bool) string {
	if selected {
		return markSelected
	}
	return markUnselected
}

// fieldName strips the required marker from a form label
func fieldName(label string) string {
	return strings.TrimSpace(strings.TrimSuffix(label, "*"))
}

func orDash(t *i18n.Translation, value string) string {
	if strings.TrimSpace(value) == "" {
		return t.Bot.NotProvided
	}
	return value
}
