// Package types provides type definitions for structured data shared across the careerscan system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Plan is a subscription tier controlling feature access.
type Plan string

const (
	PlanFree   Plan = "free"
	PlanMedium Plan = "medium"
	PlanPro    Plan = "pro"
)

// Valid reports whether p is one of the known subscription tiers.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanMedium, PlanPro:
		return true
	}
	return false
}

// Account is a registered user as persisted in the account registry.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"password_hash"`
	Plan         Plan      `json:"plan"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the credential-stripped view of the currently authenticated account.
type Session struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Plan     Plan      `json:"plan"`
	Balance  int64     `json:"balance"`
}

// SessionFromAccount strips credentials from an account.
func SessionFromAccount(a *Account) *Session {
	if a == nil {
		return nil
	}
	return &Session{
		ID:       a.ID,
		Email:    a.Email,
		FullName: a.FullName,
		Plan:     a.Plan,
		Balance:  a.Balance,
	}
}

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=1"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated session and its API token.
type LoginResponse struct {
	Session *Session `json:"session"`
	Token   string   `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
