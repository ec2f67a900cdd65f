package dto

import "github.com/bengkelku/workshop_management_app/internal/core/domain"

// AuthResponse is returned by register and login: a bearer token plus the
// account it was issued for.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// ToAuthResponse builds an AuthResponse from a signed token and its account.
func ToAuthResponse(token string, user *domain.User) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        ToUserResponse(user),
	}
}
