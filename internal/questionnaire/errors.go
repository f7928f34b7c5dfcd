package questionnaire

import "errors"

// Domain errors propagate unchanged from the layer that detects them up
// to the HTTP boundary, where they map to 400 / 404 / 410.
var (
	ErrTokenRequired = errors.New("shareable token is required")
	ErrNotFound      = errors.New("questionnaire not found")
	ErrExpired       = errors.New("questionnaire has expired")
)

// IsDomainError reports whether err is one of the domain outcomes that
// must never be reclassified or wrapped.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrTokenRequired) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrExpired)
}

// CreationError wraps an unexpected storage failure during questionnaire
// creation.
type CreationError struct {
	Cause error
}

func (e *CreationError) Error() string {
	return "failed to create questionnaire: " + e.Cause.Error()
}

func (e *CreationError) Unwrap() error { return e.Cause }

// SubmissionError wraps an unexpected failure during response submission.
// Domain errors (validation, not-found, expired) are never wrapped in one.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return "failed to submit response: " + e.Cause.Error()
}

func (e *SubmissionError) Unwrap() error { return e.Cause }
