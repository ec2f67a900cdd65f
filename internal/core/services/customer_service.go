package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates the customer service backed by the given
// repository.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, workshopID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		WorkshopID: workshopID,
		TotalDebt:  decimal.Zero,
		CreatedAt:  time.Now(),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, workshopID string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomersByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, workshopID string) error {
	if err := s.customerRepo.DeleteCustomerCascade(ctx, customerID, workshopID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
