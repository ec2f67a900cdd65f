package services

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/bengkelku/workshop_management_app/internal/dto"
)

// SessionSvcFacade exposes service session operations within one workshop scope.
type SessionSvcFacade interface {
	CreateSession(ctx context.Context, workshopID string, req dto.CreateSessionRequest) (*domain.ServiceSession, error)
	ListSessionsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.ServiceSession, error)
}

// ServiceEntrySvcFacade exposes billable line item operations within one
// workshop scope.
type ServiceEntrySvcFacade interface {
	CreateService(ctx context.Context, workshopID string, req dto.CreateServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, serviceID string, workshopID string, req dto.UpdateServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string, workshopID string) error
}

// PaymentSvcFacade exposes payment operations within one workshop scope.
// Payments are write-once.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, workshopID string, req dto.CreatePaymentRequest) (*domain.Payment, error)
}
