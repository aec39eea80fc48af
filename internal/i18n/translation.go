// Package i18n holds the fixed bilingual content of the landing page and signup flow.
package i18n

// Option pairs a stable coded value with a locale-specific label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Stat is one hero statistic
type Stat struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Translation is the complete content tree for one locale
type Translation struct {
	Common   Common   `json:"common"`
	Hero     Hero     `json:"hero"`
	Form     Form     `json:"form"`
	Success  Success  `json:"success"`
	Footer   Footer   `json:"footer"`
	NotFound NotFound `json:"notFound"`
	Bot      Bot      `json:"bot"`
}

type Common struct {
	Brand              string `json:"brand"`
	PoweredByPrefix    string `json:"poweredByPrefix"`
	PoweredByHighlight string `json:"poweredByHighlight"`
	SwitchToEnglish    string `json:"switchToEnglish"`
	SwitchToSpanish    string `json:"switchToSpanish"`
}

type Headline struct {
	Line1Prefix    string `json:"line1Prefix"`
	Line1Highlight string `json:"line1Highlight"`
	Line2Prefix    string `json:"line2Prefix"`
	Line2Highlight string `json:"line2Highlight"`
}

type Hero struct {
	Headline             Headline `json:"headline"`
	Subheadline          string   `json:"subheadline"`
	SubheadlineHighlight string   `json:"subheadlineHighlight"`
	CTA                  string   `json:"cta"`
	Stats                []Stat   `json:"stats"`
}

// ValidationMessages are the locale-specific field error messages
type ValidationMessages struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Whatsapp   string `json:"whatsapp"`
	Country    string `json:"country"`
	Categories string `json:"categories"`
}

type Form struct {
	TitlePrefix            string             `json:"titlePrefix"`
	TitleHighlight         string             `json:"titleHighlight"`
	Description            string             `json:"description"`
	UserTypeLabel          string             `json:"userTypeLabel"`
	BuyerTitle             string             `json:"buyerTitle"`
	BuyerDescription       string             `json:"buyerDescription"`
	SupplierTitle          string             `json:"supplierTitle"`
	SupplierDescription    string             `json:"supplierDescription"`
	FullNameLabel          string             `json:"fullNameLabel"`
	FullNamePlaceholder    string             `json:"fullNamePlaceholder"`
	CompanyNameLabel       string             `json:"companyNameLabel"`
	CompanyNamePlaceholder string             `json:"companyNamePlaceholder"`
	EmailLabel             string             `json:"emailLabel"`
	EmailPlaceholder       string             `json:"emailPlaceholder"`
	WhatsappLabel          string             `json:"whatsappLabel"`
	WhatsappPlaceholder    string             `json:"whatsappPlaceholder"`
	CountryLabel           string             `json:"countryLabel"`
	CountryPlaceholder     string             `json:"countryPlaceholder"`
	CategoriesLabel        string             `json:"categoriesLabel"`
	SubmitLabel            string             `json:"submitLabel"`
	SubmittingLabel        string             `json:"submittingLabel"`
	ErrorMessage           string             `json:"errorMessage"`
	CountryOptions         []Option           `json:"countryOptions"`
	CategoryOptions        []Option           `json:"categoryOptions"`
	Validation             ValidationMessages `json:"validation"`
}

type Success struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	WhatsNext   string   `json:"whatsNext"`
	Steps       []string `json:"steps"`
	BackHome    string   `json:"backHome"`
	Contact     string   `json:"contact"`
}

type Footer struct {
	Rights string `json:"rights"`
}

type NotFound struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

// Bot holds labels only the chat flow needs
type Bot struct {
	SkipLabel      string `json:"skipLabel"`
	DoneLabel      string `json:"doneLabel"`
	ReviewTitle    string `json:"reviewTitle"`
	StartOverLabel string `json:"startOverLabel"`
	BusyMessage    string `json:"busyMessage"`
	UseButtons     string `json:"useButtons"`
	FixErrors      string `json:"fixErrors"`
	NotProvided    string `json:"notProvided"`
}

// Label returns the label for value, or value itself when no option matches
func Label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Has reports whether value is one of the options
func Has(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Values returns the coded values of options in order
func Values(options []Option) []string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return values
}
