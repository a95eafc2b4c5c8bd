package models

// Outcome classifies the result of a service operation.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeValidation     Outcome = "validation"     // bad input shape, length or format
	OutcomeConflict       Outcome = "conflict"       // duplicate username or email
	OutcomeAuthentication Outcome = "authentication" // bad credentials, lockout, bad reset token
	OutcomeNotFound       Outcome = "not_found"      // missing or owned by someone else
)

// Result is returned by services for every expected outcome.
// Unexpected store failures are returned as errors instead.
type Result struct {
	Success bool
	Message string
	Outcome Outcome
}

// Succeeded builds a successful result.
func Succeeded(message string) Result {
	return Result{Success: true, Message: message, Outcome: OutcomeOK}
}

// Failed builds a failed result of the given kind.
func Failed(outcome Outcome, message string) Result {
	return Result{Success: false, Message: message, Outcome: outcome}
}
