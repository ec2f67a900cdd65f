package dto

import (
	"time"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// CreateSessionRequest defines the payload for opening a service session.
type CreateSessionRequest struct {
	SessionName string `json:"session_name" binding:"required"`
	CustomerID  string `json:"customer_id" binding:"required"`
}

// SessionResponse is the service session shape returned to clients.
type SessionResponse struct {
	ID          string    `json:"id"`
	SessionName string    `json:"session_name"`
	SessionDate time.Time `json:"session_date"`
	CustomerID  string    `json:"customer_id"`
	WorkshopID  string    `json:"workshop_id"`
}

// ToSessionResponse converts a domain.ServiceSession to its response DTO.
func ToSessionResponse(session *domain.ServiceSession) SessionResponse {
	return SessionResponse{
		ID:          session.SessionID,
		SessionName: session.SessionName,
		SessionDate: session.SessionDate,
		CustomerID:  session.CustomerID,
		WorkshopID:  session.WorkshopID,
	}
}

// ToSessionResponses converts a slice of sessions.
func ToSessionResponses(sessions []domain.ServiceSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = ToSessionResponse(&sessions[i])
	}
	return responses
}
