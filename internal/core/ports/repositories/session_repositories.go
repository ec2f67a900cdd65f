package repositories

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// SessionRepository defines persistence operations for service sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, session domain.ServiceSession) error
	FindSessionByID(ctx context.Context, sessionID string, workshopID string) (*domain.ServiceSession, error)
	// FindSessionsByCustomer returns the customer's sessions newest-first by
	// session date.
	FindSessionsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.ServiceSession, error)
}
