package services_test

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// Shared repository mocks for the service tests in this package.

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string, workshopID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomersByWorkshop(ctx context.Context, workshopID string) ([]domain.Customer, error) {
	args := m.Called(ctx, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) DeleteCustomerCascade(ctx context.Context, customerID string, workshopID string) error {
	args := m.Called(ctx, customerID, workshopID)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.ServiceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string, workshopID string) (*domain.ServiceSession, error) {
	args := m.Called(ctx, sessionID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceSession), args.Error(1)
}

func (m *MockSessionRepository) FindSessionsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.ServiceSession, error) {
	args := m.Called(ctx, customerID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceSession), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string, workshopID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindServicesBySession(ctx context.Context, sessionID string, workshopID string) ([]domain.Service, error) {
	args := m.Called(ctx, sessionID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindServicesByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.Service, error) {
	args := m.Called(ctx, customerID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, serviceID string, workshopID string) error {
	args := m.Called(ctx, serviceID, workshopID)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentsBySession(ctx context.Context, sessionID string, workshopID string) ([]domain.Payment, error) {
	args := m.Called(ctx, sessionID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.Payment, error) {
	args := m.Called(ctx, customerID, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
