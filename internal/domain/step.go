package domain

// Step is the user's current position in the chat signup flow
type Step string

const (
	StepIdle        Step = "idle"
	StepUserType    Step = "user_type"
	StepFullName    Step = "full_name"
	StepCompanyName Step = "company_name"
	StepEmail       Step = "email"
	StepWhatsapp    Step = "whatsapp"
	StepCountry     Step = "country"
	StepCategories  Step = "categories"
	StepReview      Step = "review"
	StepSubmitting  Step = "submitting"
	StepSuccess     Step = "success"
)

var stepFields = map[Step]Field{
	StepUserType:    FieldUserType,
	StepFullName:    FieldFullName,
	StepCompanyName: FieldCompanyName,
	StepEmail:       FieldEmail,
	StepWhatsapp:    FieldWhatsapp,
	StepCountry:     FieldCountry,
	StepCategories:  FieldCategories,
}

var fieldSteps = map[Field]Step{
	FieldUserType:    StepUserType,
	FieldFullName:    StepFullName,
	FieldCompanyName: StepCompanyName,
	FieldEmail:       StepEmail,
	FieldWhatsapp:    StepWhatsapp,
	FieldCountry:     StepCountry,
	FieldCategories:  StepCategories,
}

var nextSteps = map[Step]Step{
	StepIdle:        StepUserType,
	StepUserType:    StepFullName,
	StepFullName:    StepCompanyName,
	StepCompanyName: StepEmail,
	StepEmail:       StepWhatsapp,
	StepWhatsapp:    StepCountry,
	StepCountry:     StepCategories,
	StepCategories:  StepReview,
}

// Field returns the form field edited at step s
func (s Step) Field() (Field, bool) {
	f, ok := stepFields[s]
	return f, ok
}

// Next returns the step after s. Steps without a successor return themselves.
func (s Step) Next() Step {
	if n, ok := nextSteps[s]; ok {
		return n
	}
	return s
}

// TextInput reports whether s expects a free-text message
func (s Step) TextInput() bool {
	switch s {
	case StepFullName, StepCompanyName, StepEmail, StepWhatsapp:
		return true
	}
	return false
}

// StepFor returns the step that edits field
func StepFor(field Field) Step {
	if s, ok := fieldSteps[field]; ok {
		return s
	}
	return StepReview
}
