package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
)

// demoPassword is shared by every demo account.
const demoPassword = "123456"

// SeedDemoAccounts creates the three demo accounts when the registry is
// empty, one per plan. An already-populated registry is left untouched,
// so seeding is safe to run on every start.
func SeedDemoAccounts(backend storage.Store, passwords *PasswordConfig) error {
	var accounts []types.Account
	found, err := storage.GetJSON(backend, storage.KeyAccounts, &accounts)
	if err != nil {
		return fmt.Errorf("failed to read account registry: %w", err)
	}
	if found && len(accounts) > 0 {
		return nil
	}

	hash, err := passwords.Hash(demoPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	demo := []types.Account{
		{ID: uuid.New(), Email: "free@qatth.com", FullName: "Free User", PasswordHash: hash, Plan: types.PlanFree, Balance: 0, CreatedAt: now},
		{ID: uuid.New(), Email: "medium@qatth.com", FullName: "Medium User", PasswordHash: hash, Plan: types.PlanMedium, Balance: 100000, CreatedAt: now},
		{ID: uuid.New(), Email: "pro@qatth.com", FullName: "Pro User", PasswordHash: hash, Plan: types.PlanPro, Balance: 500000, CreatedAt: now},
	}
	return storage.SetJSON(backend, storage.KeyAccounts, demo)
}
