package domain

import "time"

// UserRole distinguishes workshop owners from their employees.
type UserRole string

const (
	RoleOwner    UserRole = "owner"
	RoleEmployee UserRole = "employee"
)

// User represents an account of the application in the domain.
// An owner's WorkshopID is self-assigned at registration and globally unique;
// an employee carries the WorkshopID (and WorkshopName) of the owner it joined.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	Email        string    `json:"email,omitempty"`
	Role         UserRole  `json:"role"`
	WorkshopID   string    `json:"workshopID"` // Tenant scope for every downstream entity
	WorkshopName string    `json:"workshopName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
