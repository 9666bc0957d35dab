package handlers

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v79"

	"github.com/loopcard/loyalty-backend/internal/reconciler"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, email string, passwordHash string, wallet string, role string) (*types.User, error) {
	args := m.Called(ctx, email, passwordHash, wallet, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id gocql.UUID) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) CreateRequest(ctx context.Context, requestType string, userID gocql.UUID, amount int64) (*types.Request, error) {
	args := m.Called(ctx, requestType, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Request), args.Error(1)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id gocql.UUID) (*types.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Request), args.Error(1)
}

func (m *MockRequestRepository) ListPendingByType(ctx context.Context, requestType string) ([]types.Request, error) {
	args := m.Called(ctx, requestType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Request), args.Error(1)
}

func (m *MockRequestRepository) CountPendingByType(ctx context.Context, requestType string) (int64, error) {
	args := m.Called(ctx, requestType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id gocql.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Approve(ctx context.Context, requestID gocql.UUID) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockReconciler) Reject(ctx context.Context, requestID gocql.UUID) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockReconciler) TokenStatus(ctx context.Context, wallet string) (*reconciler.TokenStatus, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconciler.TokenStatus), args.Error(1)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateCheckoutSession(userID string, amountUSD int64) (string, error) {
	args := m.Called(userID, amountUSD)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentProvider) ParseWebhookEvent(payload []byte, sigHeader string) (*stripe.Event, error) {
	args := m.Called(payload, sigHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.Event), args.Error(1)
}
