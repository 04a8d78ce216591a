package booking

import "fmt"

// ValidationError reports missing or unresolved draft fields. It is
// user-correctable and never results in a network call.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// SubmissionError reports a transport or backend failure while creating a
// session. The draft is left intact so the user can resubmit.
type SubmissionError struct {
	Code    string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

func NewSubmissionError(msg string, err error) error {
	return &SubmissionError{
		Code:    "submissionError",
		Message: msg,
		Err:     err,
	}
}
