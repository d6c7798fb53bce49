package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mhollis/wakefieldbank/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New(
		model.Account{Username: "bob", Password: "swordfish", Balance: decimal.RequireFromString("50.00")},
		model.Account{Username: "alice", Password: "hunter2", Balance: decimal.RequireFromString("100.00")},
	)
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadAllIsSortedAndStable() {
	accounts, err := s.storage.LoadAll(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(accounts, 2)
	s.Equal("alice", accounts[0].Username)
	s.Equal("bob", accounts[1].Username)

	again, err := s.storage.LoadAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(accounts, again)
}

func (s *StorageSuite) TestFindByUsername() {
	acct, err := s.storage.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("hunter2", acct.Password)
	s.Equal("100.00", acct.Balance.StringFixed(2))
}

func (s *StorageSuite) TestFindByUsernameTrims() {
	acct, err := s.storage.FindByUsername(s.ctx, " bob\t")
	s.Require().NoError(err)
	s.Equal("bob", acct.Username)
}

func (s *StorageSuite) TestFindByUsernameNotFound() {
	_, err := s.storage.FindByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateBalance() {
	err := s.storage.UpdateBalance(s.ctx, "alice", decimal.RequireFromString("125.50"))
	s.Require().NoError(err)

	acct, err := s.storage.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("125.50", acct.Balance.StringFixed(2))
}

func (s *StorageSuite) TestUpdateBalanceUnknownAccount() {
	err := s.storage.UpdateBalance(s.ctx, "nobody", decimal.Zero)
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// The store hands out copies; mutating a returned record must not leak
// back into storage.
func (s *StorageSuite) TestReturnedRecordsAreCopies() {
	acct, err := s.storage.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	acct.Balance = decimal.RequireFromString("9999.00")

	fresh, err := s.storage.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("100.00", fresh.Balance.StringFixed(2))
}
