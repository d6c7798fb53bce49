package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mhollis/wakefieldbank/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.Seed(s.ctx, []model.Account{
		{Username: "alice", Password: "hunter2", Balance: decimal.RequireFromString("100.00")},
		{Username: "bob", Password: "swordfish", Balance: decimal.RequireFromString("50.25")},
	}))
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestLoadAllReturnsSortedRoster() {
	accounts, err := s.storage.LoadAll(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(accounts, 2)
	s.Equal("alice", accounts[0].Username)
	s.Equal("100.00", accounts[0].Balance.StringFixed(2))
	s.Equal("bob", accounts[1].Username)
}

func (s *StorageSuite) TestFindByUsername() {
	acct, err := s.storage.FindByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("hunter2", acct.Password)
	s.Equal("100.00", acct.Balance.StringFixed(2))
}

func (s *StorageSuite) TestFindByUsernameTrims() {
	acct, err := s.storage.FindByUsername(s.ctx, "  alice ")
	s.Require().NoError(err)
	s.Equal("alice", acct.Username)
}

func (s *StorageSuite) TestFindByUsernameNotFound() {
	_, err := s.storage.FindByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestUpdateBalance() {
	err := s.storage.UpdateBalance(s.ctx, "bob", decimal.RequireFromString("10.25"))
	s.Require().NoError(err)

	acct, err := s.storage.FindByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal("10.25", acct.Balance.StringFixed(2))
}

func (s *StorageSuite) TestUpdateBalanceUnknownAccount() {
	err := s.storage.UpdateBalance(s.ctx, "nobody", decimal.Zero)
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestMalformedBalanceIsStoreUnavailable() {
	s.mini.HSet(accountKey("alice"), fieldBalance, "garbage")

	_, err := s.storage.FindByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrStoreUnavailable)
}

func (s *StorageSuite) TestConnectionLossIsStoreUnavailable() {
	s.mini.Close()

	_, err := s.storage.LoadAll(s.ctx)
	s.ErrorIs(err, model.ErrStoreUnavailable)
}
