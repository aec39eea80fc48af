package domain

// OutcomeStatus is the state of one submission attempt
type OutcomeStatus string

const (
	OutcomePending   OutcomeStatus = "pending"
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
)

// Outcome is the result of one submission attempt
type Outcome struct {
	Status OutcomeStatus
	Reason string
}

// Succeeded returns a succeeded outcome
func Succeeded() Outcome {
	return Outcome{Status: OutcomeSucceeded}
}

// Failed returns a failed outcome carrying reason
func Failed(reason string) Outcome {
	return Outcome{Status: OutcomeFailed, Reason: reason}
}

// Terminal reports whether the attempt has resolved
func (o Outcome) Terminal() bool {
	return o.Status == OutcomeSucceeded || o.Status == OutcomeFailed
}
