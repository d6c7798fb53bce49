package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage/csvfile"
	"github.com/mhollis/wakefieldbank/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp(
		TestAccount("alice", "hunter2", "100.00"),
		TestAccount("bob", "swordfish", "50.00"),
	)
	s.ctx = context.Background()
}

// Test: Complete flow from login through deposits and withdrawals to logout
func (s *IntegrationSuite) TestCompleteLedgerFlow() {
	// Step 1: Log in
	session, err := s.app.AuthService.Login(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)
	s.Equal("alice", session.Identity)

	// Step 2: Balance right after login matches the stored record
	balance, err := s.app.LedgerService.Balance(s.ctx, session)
	s.Require().NoError(err)
	s.Equal("100.00", balance.StringFixed(2))

	// Step 3: Deposit and withdraw in sequence
	balance, err = s.app.LedgerService.Deposit(s.ctx, session, "25.50")
	s.Require().NoError(err)
	s.Equal("125.50", balance.StringFixed(2))

	balance, err = s.app.LedgerService.Withdraw(s.ctx, session, "40.00")
	s.Require().NoError(err)
	s.Equal("85.50", balance.StringFixed(2))

	// Step 4: Final balance equals initial + deposits - withdrawals
	balance, err = s.app.LedgerService.Balance(s.ctx, session)
	s.Require().NoError(err)
	s.Equal("85.50", balance.StringFixed(2))

	// Step 5: Log out; ledger operations are rejected afterwards
	s.app.AuthService.Logout(session)
	_, err = s.app.LedgerService.Balance(s.ctx, session)
	s.ErrorIs(err, model.ErrNotAuthenticated)
}

func (s *IntegrationSuite) TestOtherAccountsUntouchedByMutations() {
	session, err := s.app.AuthService.Login(s.ctx, "alice", "hunter2")
	s.Require().NoError(err)

	_, err = s.app.LedgerService.Deposit(s.ctx, session, "10.00")
	s.Require().NoError(err)

	bob, err := s.app.Store.FindByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal("50.00", bob.Balance.StringFixed(2))
}

func (s *IntegrationSuite) TestFileStorageFlow() {
	path := filepath.Join(s.T().TempDir(), "accounts.csv")
	s.Require().NoError(csvfile.Write(path, []model.Account{
		TestAccount("carol", "letmein", "200.00"),
	}))

	app, err := New(Config{
		StorageType:  StorageTypeFile,
		AccountsFile: path,
		Logger:       testutil.NopLogger(),
	})
	s.Require().NoError(err)

	session, err := app.AuthService.Login(s.ctx, "carol", "letmein")
	s.Require().NoError(err)

	balance, err := app.LedgerService.Withdraw(s.ctx, session, "0.01")
	s.Require().NoError(err)
	s.Equal("199.99", balance.StringFixed(2))

	// A fresh store over the same file observes the persisted balance
	reopened := csvfile.New(path)
	acct, err := reopened.FindByUsername(s.ctx, "carol")
	s.Require().NoError(err)
	s.Equal("199.99", acct.Balance.StringFixed(2))
}
