package services

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
)

// LedgerSvcFacade exposes read-only debt aggregation over already-scoped data.
type LedgerSvcFacade interface {
	// GetCustomerSummary returns the customer's full ledger: every session
	// newest-first with its totals, plus grand totals across sessions.
	GetCustomerSummary(ctx context.Context, customerID string, workshopID string) (*domain.CustomerSummary, error)
	// GetDashboard returns one row per customer in the workshop with total
	// debt and service/payment/session counts.
	GetDashboard(ctx context.Context, workshopID string) ([]domain.DashboardRow, error)
}
