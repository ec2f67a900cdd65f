package dto

import (
	"time"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the payload for creating a customer.
// The workshop scope is never taken from the payload; it comes from the
// resolved identity.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// CustomerResponse is the customer shape returned to clients.
type CustomerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	WorkshopID string          `json:"workshop_id"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         customer.CustomerID,
		Name:       customer.Name,
		Phone:      customer.Phone,
		WorkshopID: customer.WorkshopID,
		TotalDebt:  customer.TotalDebt,
		CreatedAt:  customer.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
