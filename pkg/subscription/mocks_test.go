package subscription

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Eui18/recetkit/pkg/checkout"
	"github.com/Eui18/recetkit/pkg/plan"
)

// MockGateway is a mock implementation of Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Initiate(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Cancel(ctx context.Context, userID, subscriptionID string) (*CancellationResult, error) {
	args := m.Called(ctx, userID, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CancellationResult), args.Error(1)
}

// MockTierSource is a mock implementation of TierSource.
type MockTierSource struct {
	mock.Mock
}

func (m *MockTierSource) CurrentTier(ctx context.Context, userID string) (plan.Tier, string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(plan.Tier), args.String(1), args.Error(2)
}

// MockStore is a mock implementation of checkout.Store for failure
// injection; happy paths use checkout.NewMemoryStore.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context) (*checkout.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Session), args.Error(1)
}

func (m *MockStore) Put(ctx context.Context, session *checkout.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
