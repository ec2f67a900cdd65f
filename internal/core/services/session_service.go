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
)

type sessionService struct {
	sessionRepo  portsrepo.SessionRepository
	customerRepo portsrepo.CustomerRepository
}

// NewSessionService creates the service session service. The customer
// repository is used to verify that the target customer exists in the
// caller's scope before a session is attached to it.
func NewSessionService(sessionRepo portsrepo.SessionRepository, customerRepo portsrepo.CustomerRepository) portssvc.SessionSvcFacade {
	return &sessionService{sessionRepo: sessionRepo, customerRepo: customerRepo}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) CreateSession(ctx context.Context, workshopID string, req dto.CreateSessionRequest) (*domain.ServiceSession, error) {
	// The customer id comes from the client; it must resolve inside the
	// caller's workshop or the session would leak across tenants.
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID, workshopID); err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	session := domain.ServiceSession{
		SessionID:   uuid.NewString(),
		SessionName: req.SessionName,
		SessionDate: time.Now(),
		CustomerID:  req.CustomerID,
		WorkshopID:  workshopID,
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &session, nil
}

func (s *sessionService) ListSessionsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.ServiceSession, error) {
	sessions, err := s.sessionRepo.FindSessionsByCustomer(ctx, customerID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
