package domain

import "errors"

// Severity tags a validation issue. Only SeverityError blocks an operation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

var ErrValidation = errors.New("validation failed")

// Issue is a single failed rule.
type Issue struct {
	Rule     string   `json:"rule"`
	Field    string   `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult aggregates every issue raised while evaluating a rule set.
type ValidationResult struct {
	Issues []Issue `json:"issues"`
}

// Add appends an issue.
func (r *ValidationResult) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// Merge appends the issues of another result.
func (r *ValidationResult) Merge(other ValidationResult) {
	if len(other.Issues) == 0 {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Valid reports whether no blocking issue was raised.
func (r ValidationResult) Valid() bool {
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the messages of blocking issues in evaluation order.
func (r ValidationResult) Errors() []string {
	return r.messages(SeverityError)
}

// Warnings returns the messages of advisory issues in evaluation order.
func (r ValidationResult) Warnings() []string {
	return r.messages(SeverityWarning)
}

func (r ValidationResult) messages(sev Severity) []string {
	out := make([]string, 0, len(r.Issues))
	for _, is := range r.Issues {
		if is.Severity == sev {
			out = append(out, is.Message)
		}
	}
	return out
}

// ValidationError is returned when a request carries blocking issues.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
