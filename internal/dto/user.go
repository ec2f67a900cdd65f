package dto

import (
	"time"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// RegisterRequest defines the payload for account registration.
// WorkshopName is used for owners; WorkshopID references an existing owner's
// scope and is required for employees.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Email        string `json:"email"`
	WorkshopName string `json:"workshop_name"`
	WorkshopID   string `json:"workshop_id"`
	Role         string `json:"role"`
}

// LoginRequest defines the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the account shape returned to clients. The password hash is
// never part of it.
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role"`
	WorkshopID   string    `json:"workshop_id"`
	WorkshopName string    `json:"workshop_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.UserID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         string(user.Role),
		WorkshopID:   user.WorkshopID,
		WorkshopName: user.WorkshopName,
		CreatedAt:    user.CreatedAt,
	}
}
