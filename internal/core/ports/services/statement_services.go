package services

import (
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// StatementSvcFacade renders a human-readable statement and a WhatsApp deep
// link from an already computed customer summary. Pure: no fetches, no side
// effects.
type StatementSvcFacade interface {
	// BuildStatement renders the statement for one session when sessionID is
	// non-empty, or for all sessions plus the grand totals otherwise.
	BuildStatement(summary *domain.CustomerSummary, workshopName string, sessionID string) (*domain.WhatsAppStatement, error)
}
