package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/dto"
	"github.com/bengkelku/workshop_management_app/internal/utils"
	"github.com/google/uuid"
)

// dummyPasswordHash is compared against when the username does not exist so
// that the unknown-username and wrong-password paths cost the same bcrypt
// round trip.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the identity service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleOwner
	}
	if role != domain.RoleOwner && role != domain.RoleEmployee {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %q already registered: %w", req.Username, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	workshopID := req.WorkshopID
	workshopName := req.WorkshopName
	switch role {
	case domain.RoleOwner:
		// Owners get a fresh, self-assigned scope id.
		workshopID, err = utils.GenerateWorkshopID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate workshop id: %w", err)
		}
	case domain.RoleEmployee:
		if workshopID == "" {
			return nil, fmt.Errorf("workshop id required for employee: %w", apperrors.ErrValidation)
		}
		owner, err := s.userRepo.FindOwnerByWorkshopID(ctx, workshopID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("invalid workshop id %q: %w", workshopID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to resolve workshop owner: %w", err)
		}
		// Employees inherit the owner's workshop display name.
		workshopName = owner.WorkshopName
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Role:         role,
		WorkshopID:   workshopID,
		WorkshopName: workshopName,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a bcrypt comparison so this path does not return
			// measurably faster than a wrong password.
			utils.CheckPasswordHash(password, dummyPasswordHash)
			return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}
