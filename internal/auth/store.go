// Package auth manages the account registry, the single active session,
// and plan-based feature gating.
package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

// Store manages accounts and the single session slot over a storage
// backend. It is an injectable object, not a package global, so tests
// can build isolated stores. Every mutation persists the full registry
// or session value before returning; there is no partial-failure state.
type Store struct {
	mu        sync.Mutex
	storage   storage.Store
	passwords *PasswordConfig
	features  FeatureAccess
	session   *types.Session
}

// NewStore builds a Store over the given backend and rehydrates any
// persisted session.
func NewStore(backend storage.Store, passwords *PasswordConfig) (*Store, error) {
	s := &Store{
		storage:   backend,
		passwords: passwords,
		features:  DefaultFeatureAccess(),
	}

	var session types.Session
	found, err := storage.GetJSON(backend, storage.KeySession, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if found {
		s.session = &session
	}
	return s, nil
}

// Register creates a new account and establishes it as the current
// session. All inputs are trimmed first. New accounts start on the free
// plan with a zero balance.
func (s *Store) Register(email, password, fullName string) (*types.Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	fullName = strings.TrimSpace(fullName)

	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "password is required"}
	}
	if fullName == "" {
		return nil, &ValidationError{Field: "full_name", Message: "full name is required"}
	}
	if len(password) < MinPasswordLength {
		return nil, &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLength)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}
	for _, account := range accounts {
		if strings.EqualFold(account.Email, email) {
			return nil, &DuplicateEmailError{Email: email}
		}
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, err
	}

	account := types.Account{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Plan:         types.PlanFree,
		Balance:      0,
		CreatedAt:    time.Now().UTC(),
	}
	accounts = append(accounts, account)
	if err := s.saveAccounts(accounts); err != nil {
		return nil, err
	}
	return s.establishSession(&account)
}

// Login authenticates by email (case-insensitive) and password. Any
// mismatch, unknown email or wrong password alike, yields the same
// generic InvalidCredentialsError.
func (s *Store) Login(email, password string) (*types.Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "password is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) && s.passwords.Verify(password, accounts[i].PasswordHash) {
			return s.establishSession(&accounts[i])
		}
	}
	return nil, &InvalidCredentialsError{}
}

// Logout clears the current session. Idempotent: logging out while
// logged out is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return s.storage.Delete(storage.KeySession)
}

// Session returns a copy of the current session, or nil when logged out.
func (s *Store) Session() *types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// UpdateBalance adds delta (which may be negative) to the current
// account's balance. Without an active session it is a silent no-op.
// No invariant clamps the balance at zero.
func (s *Store) UpdateBalance(delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateCurrentAccount(func(account *types.Account) {
		account.Balance += delta
	})
}

// UpgradePlan sets the current account's plan. Payment state is out of
// scope here; this is a pure data mutation. Without a session it is a
// silent no-op.
func (s *Store) UpgradePlan(plan types.Plan) error {
	if !plan.Valid() {
		return &ValidationError{Field: "plan", Message: fmt.Sprintf("unknown plan %q", plan)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mutateCurrentAccount(func(account *types.Account) {
		account.Plan = plan
	})
}

// CanAccessFeature reports whether a plan may use a feature; unknown
// feature names deny rather than error.
func (s *Store) CanAccessFeature(feature string, plan types.Plan) bool {
	return s.features.CanAccess(feature, plan)
}

// mutateCurrentAccount applies fn to the session's account in the
// registry and re-persists both registry and session. Callers hold s.mu.
func (s *Store) mutateCurrentAccount(fn func(*types.Account)) error {
	if s.session == nil {
		return nil
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].ID == s.session.ID {
			fn(&accounts[i])
			if err := s.saveAccounts(accounts); err != nil {
				return err
			}
			session := types.SessionFromAccount(&accounts[i])
			if err := storage.SetJSON(s.storage, storage.KeySession, session); err != nil {
				return err
			}
			s.session = session
			return nil
		}
	}
	// Session points at an account that no longer exists; treat as no-op.
	return nil
}

// establishSession persists and installs the session for an account.
// Callers hold s.mu.
func (s *Store) establishSession(account *types.Account) (*types.Session, error) {
	session := types.SessionFromAccount(account)
	if err := storage.SetJSON(s.storage, storage.KeySession, session); err != nil {
		return nil, err
	}
	s.session = session
	cp := *session
	return &cp, nil
}

func (s *Store) loadAccounts() ([]types.Account, error) {
	var accounts []types.Account
	if _, err := storage.GetJSON(s.storage, storage.KeyAccounts, &accounts); err != nil {
		return nil, fmt.Errorf("failed to load account registry: %w", err)
	}
	return accounts, nil
}

func (s *Store) saveAccounts(accounts []types.Account) error {
	if err := storage.SetJSON(s.storage, storage.KeyAccounts, accounts); err != nil {
		return fmt.Errorf("failed to save account registry: %w", err)
	}
	return nil
}
