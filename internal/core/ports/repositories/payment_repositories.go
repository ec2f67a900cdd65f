package repositories

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
// Payments are write-once: there is no update operation.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	FindPaymentsBySession(ctx context.Context, sessionID string, workshopID string) ([]domain.Payment, error)
	FindPaymentsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.Payment, error)
}
