// Package validation holds the payment validation rules: the email
// format check, the per-currency amount bounds, and the composed
// payment validator. All checks are pure and safe for concurrent use.
package validation

// ValidationResult is the outcome of a validation check. Invalid
// results always carry a non-empty message.
type ValidationResult struct {
	Valid   bool
	Message string
}

// MakeValid returns a passing result.
func MakeValid() ValidationResult {
	return ValidationResult{Valid: true}
}

// MakeInvalid returns a failing result with a human-readable reason.
func MakeInvalid(message string) ValidationResult {
	return ValidationResult{Message: message}
}

// ValidationError marks a submission rejected by validation rather than
// by a storage failure, so the transport can map it to a 400 instead of
// a 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError wraps a validation reason as an error.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
