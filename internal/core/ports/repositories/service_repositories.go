package repositories

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// ServiceRepository defines persistence operations for billable line items.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) error
	FindServiceByID(ctx context.Context, serviceID string, workshopID string) (*domain.Service, error)
	FindServicesBySession(ctx context.Context, sessionID string, workshopID string) ([]domain.Service, error)
	FindServicesByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string, workshopID string) error
}
