package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fulloncrypto.backend/internal/domain/entities"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*entities.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEthAddress(ctx context.Context, address string) (*entities.User, error) {
	args := m.Called(ctx, address)
	if u, ok := args.Get(0).(*entities.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateEthAddress(ctx context.Context, username, address string) (*entities.User, error) {
	args := m.Called(ctx, username, address)
	if u, ok := args.Get(0).(*entities.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPaymentRequestRepository struct {
	mock.Mock
}

func (m *MockPaymentRequestRepository) Create(ctx context.Context, req *entities.PaymentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPaymentRequestRepository) ListPending(ctx context.Context) ([]*entities.PaymentRequest, error) {
	args := m.Called(ctx)
	if reqs, ok := args.Get(0).([]*entities.PaymentRequest); ok {
		return reqs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRequestRepository) GetByContractID(ctx context.Context, contractRequestID string) (*entities.PaymentRequest, error) {
	args := m.Called(ctx, contractRequestID)
	if req, ok := args.Get(0).(*entities.PaymentRequest); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUpiIndexRepository struct {
	mock.Mock
}

func (m *MockUpiIndexRepository) UpsertByContractID(ctx context.Context, entry *entities.UpiIndexEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUpiIndexRepository) GetByContractID(ctx context.Context, contractRequestID string) (*entities.UpiIndexEntry, error) {
	args := m.Called(ctx, contractRequestID)
	if entry, ok := args.Get(0).(*entities.UpiIndexEntry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}
