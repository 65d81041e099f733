package auth

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for password hashing and
// verification. Accounts store bcrypt hashes; comparison happens inside
// bcrypt, which is constant-time.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret mixed into every password
}

// NewPasswordConfig creates a password configuration from environment
// variables: BCRYPT_COST (default 12) and optionally PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	cfg := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	return nil
}

// Hash hashes a password with bcrypt (plus the pepper, if set).
func (c *PasswordConfig) Hash(pw string) (string, error) {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether pw matches the stored hash.
func (c *PasswordConfig) Verify(pw, storedHash string) bool {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
