package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo  portsrepo.PaymentRepository
	customerRepo portsrepo.CustomerRepository
	sessionRepo  portsrepo.SessionRepository
}

// NewPaymentService creates the payment service. Customer and session
// repositories are used to verify referenced entities live in the caller's
// scope.
func NewPaymentService(paymentRepo portsrepo.PaymentRepository, customerRepo portsrepo.CustomerRepository, sessionRepo portsrepo.SessionRepository) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo, customerRepo: customerRepo, sessionRepo: sessionRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, workshopID string, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID, workshopID); err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	if req.SessionID != nil {
		session, err := s.sessionRepo.FindSessionByID(ctx, *req.SessionID, workshopID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve session %s: %w", *req.SessionID, err)
		}
		if session.CustomerID != req.CustomerID {
			return nil, fmt.Errorf("customer does not match session customer: %w", apperrors.ErrValidation)
		}
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		Amount:      req.Amount,
		Description: req.Description,
		SessionID:   req.SessionID,
		CustomerID:  req.CustomerID,
		WorkshopID:  workshopID,
		PaymentDate: time.Now(),
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	return &payment, nil
}
