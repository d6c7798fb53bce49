package factory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhollis/wakefieldbank/internal/dependencies/mocks"
	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/services/auth"
	"github.com/mhollis/wakefieldbank/internal/storage/memory"
	"github.com/mhollis/wakefieldbank/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory storage
// seeded with the given accounts and a mocked clock.
func NewTestApp(accounts ...model.Account) *TestApp {
	store := memory.New(accounts...)
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// TestAccount builds an account record with a plaintext credential.
func TestAccount(username, password, balance string) model.Account {
	return model.Account{
		Username: username,
		Password: password,
		Balance:  decimal.RequireFromString(balance),
	}
}
