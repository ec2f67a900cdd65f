package dto

import (
	"time"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the payload for recording a payment. SessionID
// is optional: a payment may settle a specific session or the customer as a
// whole.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	SessionID   *string         `json:"service_session_id"`
	CustomerID  string          `json:"customer_id" binding:"required"`
}

// PaymentResponse is the payment shape returned to clients.
type PaymentResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	SessionID   *string         `json:"service_session_id,omitempty"`
	CustomerID  string          `json:"customer_id"`
	WorkshopID  string          `json:"workshop_id"`
	PaymentDate time.Time       `json:"payment_date"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.PaymentID,
		Amount:      payment.Amount,
		Description: payment.Description,
		SessionID:   payment.SessionID,
		CustomerID:  payment.CustomerID,
		WorkshopID:  payment.WorkshopID,
		PaymentDate: payment.PaymentDate,
	}
}

// ToPaymentResponses converts a slice of payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
