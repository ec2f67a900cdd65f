package repositories

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
// Every read and write is scoped by workshopID; ids from other tenants are
// invisible.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string, workshopID string) (*domain.Customer, error)
	FindCustomersByWorkshop(ctx context.Context, workshopID string) ([]domain.Customer, error)
	// DeleteCustomerCascade removes the customer and all of its sessions,
	// services and payments in a single transaction. Deleting an already absent
	// customer is a no-op success.
	DeleteCustomerCascade(ctx context.Context, customerID string, workshopID string) error
}
