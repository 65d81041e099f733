package auth

import "fmt"

// ValidationError indicates a register/login request with missing or
// too-short fields. Field names the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// DuplicateEmailError indicates registration with an email that already
// has an account (compared case-insensitively).
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// InvalidCredentialsError indicates a login with no matching account and
// password pair. The message is deliberately generic so it does not leak
// whether the email exists.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid email or password"
}
