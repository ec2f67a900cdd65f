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

type serviceEntryService struct {
	serviceRepo portsrepo.ServiceRepository
	sessionRepo portsrepo.SessionRepository
}

// NewServiceEntryService creates the line item service. The session repository
// is used to verify the target session exists in the caller's scope.
func NewServiceEntryService(serviceRepo portsrepo.ServiceRepository, sessionRepo portsrepo.SessionRepository) portssvc.ServiceEntrySvcFacade {
	return &serviceEntryService{serviceRepo: serviceRepo, sessionRepo: sessionRepo}
}

var _ portssvc.ServiceEntrySvcFacade = (*serviceEntryService)(nil)

func (s *serviceEntryService) CreateService(ctx context.Context, workshopID string, req dto.CreateServiceRequest) (*domain.Service, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}

	session, err := s.sessionRepo.FindSessionByID(ctx, req.SessionID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session %s: %w", req.SessionID, err)
	}
	if session.CustomerID != req.CustomerID {
		return nil, fmt.Errorf("customer does not match session customer: %w", apperrors.ErrValidation)
	}

	service := domain.Service{
		ServiceID:   uuid.NewString(),
		Description: req.Description,
		Price:       req.Price,
		SessionID:   req.SessionID,
		CustomerID:  req.CustomerID,
		WorkshopID:  workshopID,
		CreatedAt:   time.Now(),
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}

	return &service, nil
}

func (s *serviceEntryService) UpdateService(ctx context.Context, serviceID string, workshopID string, req dto.UpdateServiceRequest) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}

	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
		}
		service.Price = *req.Price
	}

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", serviceID, err)
	}

	return service, nil
}

func (s *serviceEntryService) DeleteService(ctx context.Context, serviceID string, workshopID string) error {
	if err := s.serviceRepo.DeleteService(ctx, serviceID, workshopID); err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	return nil
}
