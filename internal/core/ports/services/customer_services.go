package services

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/bengkelku/workshop_management_app/internal/dto"
)

// CustomerSvcFacade exposes customer operations within one workshop scope.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, workshopID string, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context, workshopID string) ([]domain.Customer, error)
	// DeleteCustomer cascades to the customer's sessions, services and
	// payments. Re-deleting an absent customer is a no-op success.
	DeleteCustomer(ctx context.Context, customerID string, workshopID string) error
}
