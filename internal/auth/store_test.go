package auth

import (
	"testing"

	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswords(t *testing.T) *PasswordConfig {
	t.Helper()
	// MinCost keeps the bcrypt work factor cheap for tests.
	return &PasswordConfig{BcryptCost: 4}
}

func newTestStore(t *testing.T) (*Store, storage.Store) {
	t.Helper()
	backend := storage.NewMemoryStore()
	store, err := NewStore(backend, testPasswords(t))
	require.NoError(t, err)
	return store, backend
}

func TestRegister_Success(t *testing.T) {
	store, _ := newTestStore(t)

	session, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, "Name", session.FullName)
	assert.Equal(t, types.PlanFree, session.Plan)
	assert.Equal(t, int64(0), session.Balance)
	assert.NotEqual(t, "", session.ID.String())

	current := store.Session()
	require.NotNil(t, current)
	assert.Equal(t, session.ID, current.ID)
}

func TestRegister_TrimsInputs(t *testing.T) {
	store, _ := newTestStore(t)

	session, err := store.Register("  a@x.com  ", "  123456  ", "  Name  ")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, "Name", session.FullName)

	// The stored password is the trimmed one.
	_, err = store.Login("a@x.com", "123456")
	require.NoError(t, err)
}

func TestRegister_ValidationErrors(t *testing.T) {
	cases := []struct {
		name                      string
		email, password, fullName string
	}{
		{"empty email", "", "123456", "Name"},
		{"whitespace email", "   ", "123456", "Name"},
		{"empty password", "a@x.com", "", "Name"},
		{"empty name", "a@x.com", "123456", ""},
		{"short password", "a@x.com", "12345", "Name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			_, err := store.Register(tc.email, tc.password, tc.fullName)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Nil(t, store.Session())
		})
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	_, err = store.Register("A@X.com", "000000", "Other")
	var duplicate *DuplicateEmailError
	require.ErrorAs(t, err, &duplicate)
}

func TestLogin_Success(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)
	require.NoError(t, store.Logout())

	session, err := store.Login("a@x.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.NotNil(t, store.Session())
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	_, err = store.Login("A@X.COM", "123456")
	require.NoError(t, err)
}

func TestLogin_WrongPasswordIsGeneric(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	_, err = store.Login("a@x.com", "wrong")
	var invalid *InvalidCredentialsError
	require.ErrorAs(t, err, &invalid)

	_, err = store.Login("nobody@x.com", "123456")
	require.ErrorAs(t, err, &invalid)
}

func TestLogin_EmptyFieldsAreValidationErrors(t *testing.T) {
	store, _ := newTestStore(t)
	for _, pair := range [][2]string{{"", "123456"}, {"a@x.com", ""}, {"  ", "  "}} {
		_, err := store.Login(pair[0], pair[1])
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
	}
}

func TestSessionIsCredentialStripped(t *testing.T) {
	store, backend := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	raw, found, err := backend.Get(storage.KeySession)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$") // no bcrypt hash leaks
}

func TestLogout_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	assert.Nil(t, store.Session())
}

func TestUpdateBalance(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	require.NoError(t, store.UpdateBalance(50000))
	assert.Equal(t, int64(50000), store.Session().Balance)

	// Negative deltas are allowed and unclamped.
	require.NoError(t, store.UpdateBalance(-70000))
	assert.Equal(t, int64(-20000), store.Session().Balance)
}

func TestUpdateBalance_NoSessionIsNoOp(t *testing.T) {
	store, backend := newTestStore(t)
	require.NoError(t, store.UpdateBalance(100))

	_, found, err := backend.Get(storage.KeySession)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpgradePlan(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	require.NoError(t, store.UpgradePlan(types.PlanPro))
	assert.Equal(t, types.PlanPro, store.Session().Plan)

	// The mutation reaches the registry, not just the session copy.
	require.NoError(t, store.Logout())
	session, err := store.Login("a@x.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, types.PlanPro, session.Plan)
}

func TestUpgradePlan_RejectsUnknownPlan(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	err = store.UpgradePlan(types.Plan("platinum"))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestSessionRehydration(t *testing.T) {
	backend := storage.NewMemoryStore()
	first, err := NewStore(backend, testPasswords(t))
	require.NoError(t, err)
	_, err = first.Register("a@x.com", "123456", "Name")
	require.NoError(t, err)

	second, err := NewStore(backend, testPasswords(t))
	require.NoError(t, err)
	session := second.Session()
	require.NotNil(t, session)
	assert.Equal(t, "a@x.com", session.Email)
}

func TestCanAccessFeature(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.CanAccessFeature("interview", types.PlanFree))
	assert.False(t, store.CanAccessFeature("interview", types.PlanMedium))
	assert.True(t, store.CanAccessFeature("interview", types.PlanPro))

	assert.False(t, store.CanAccessFeature("chatbot", types.PlanFree))
	assert.True(t, store.CanAccessFeature("chatbot", types.PlanMedium))
	assert.True(t, store.CanAccessFeature("chatbot", types.PlanPro))

	for _, feature := range []string{"cv-scanner", "cv-builder", "jobs", "recharge"} {
		for _, plan := range []types.Plan{types.PlanFree, types.PlanMedium, types.PlanPro} {
			assert.True(t, store.CanAccessFeature(feature, plan), "%s should be open to %s", feature, plan)
		}
	}

	// Unknown features and plans fail closed, not loudly.
	assert.False(t, store.CanAccessFeature("time-machine", types.PlanPro))
	assert.False(t, store.CanAccessFeature("chatbot", types.Plan("platinum")))
}

func TestSeedDemoAccounts(t *testing.T) {
	backend := storage.NewMemoryStore()
	passwords := testPasswords(t)
	require.NoError(t, SeedDemoAccounts(backend, passwords))

	store, err := NewStore(backend, passwords)
	require.NoError(t, err)

	session, err := store.Login("pro@qatth.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, types.PlanPro, session.Plan)
	assert.Equal(t, int64(500000), session.Balance)

	// Seeding again must not duplicate or reset accounts.
	require.NoError(t, store.UpdateBalance(-1000))
	require.NoError(t, SeedDemoAccounts(backend, passwords))
	var accounts []types.Account
	found, err := storage.GetJSON(backend, storage.KeyAccounts, &accounts)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, accounts, 3)
}
