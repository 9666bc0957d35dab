package reconciler

import (
	"context"
	"math/big"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/mock"

	"github.com/loopcard/loyalty-backend/pkg/types"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) BalanceOf(ctx context.Context, wallet string) (*big.Int, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockLedger) OwnerOf(ctx context.Context, tokenID *big.Int) (string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) TokenCounter(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockLedger) WalletToToken(ctx context.Context, wallet string) (*big.Int, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockLedger) GetPoints(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockLedger) MintNFT(ctx context.Context, wallet string) (string, error) {
	args := m.Called(ctx, wallet)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) AddPointsToNFT(ctx context.Context, tokenID *big.Int, amount *big.Int) (string, error) {
	args := m.Called(ctx, tokenID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) FixWalletToTokenMapping(ctx context.Context, wallet string, tokenID *big.Int) (string, error) {
	args := m.Called(ctx, wallet, tokenID)
	return args.String(0), args.Error(1)
}

type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) GetByID(ctx context.Context, id gocql.UUID) (*types.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Request), args.Error(1)
}

func (m *MockRequestStore) UpdateStatus(ctx context.Context, id gocql.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id gocql.UUID) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}
