package repositories

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
// Accounts are the only entities not scoped by workshop: usernames are globally
// unique and workshop membership is derived from the account itself.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindOwnerByWorkshopID resolves the owner account carrying the given
	// workshop scope id. Used to validate employee registrations.
	FindOwnerByWorkshopID(ctx context.Context, workshopID string) (*domain.User, error)
}
