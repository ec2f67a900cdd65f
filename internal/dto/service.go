package dto

import (
	"time"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the payload for adding a billable line item to
// a session.
type CreateServiceRequest struct {
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	SessionID   string          `json:"service_session_id" binding:"required"`
	CustomerID  string          `json:"customer_id" binding:"required"`
}

// UpdateServiceRequest defines the bounded partial update for a line item.
// Pointer fields distinguish omitted fields from zero values; unknown fields
// are rejected by the shape itself.
type UpdateServiceRequest struct {
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ServiceResponse is the line item shape returned to clients.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SessionID   string          `json:"service_session_id"`
	CustomerID  string          `json:"customer_id"`
	WorkshopID  string          `json:"workshop_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToServiceResponse converts a domain.Service to its response DTO.
func ToServiceResponse(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ServiceID,
		Description: service.Description,
		Price:       service.Price,
		SessionID:   service.SessionID,
		CustomerID:  service.CustomerID,
		WorkshopID:  service.WorkshopID,
		CreatedAt:   service.CreatedAt,
	}
}

// ToServiceResponses converts a slice of services.
func ToServiceResponses(services []domain.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return responses
}
