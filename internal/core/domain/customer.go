package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a workshop customer.
// TotalDebt is a cached value kept for response shape parity; the authoritative
// figure is always computed by the ledger service from services and payments.
type Customer struct {
	CustomerID string          `json:"customerID"` // Primary Key (UUID)
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	WorkshopID string          `json:"workshopID"`
	TotalDebt  decimal.Decimal `json:"totalDebt"`
	CreatedAt  time.Time       `json:"createdAt"`
}
