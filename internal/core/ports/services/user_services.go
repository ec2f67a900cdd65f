package services

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/bengkelku/workshop_management_app/internal/dto"
)

// UserSvcFacade exposes identity operations: registration, credential checks
// and account lookups used by the auth middleware to resolve a tenant scope.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// AuthenticateUser verifies username/password and returns the account.
	// Unknown username and wrong password are indistinguishable to the caller.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
