package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a billable line item belonging to a service session.
// CustomerID is carried redundantly so customer-level aggregation does not need
// to join through the session.
type Service struct {
	ServiceID   string          `json:"serviceID"` // Primary Key (UUID)
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	SessionID   string          `json:"sessionID"`
	CustomerID  string          `json:"customerID"`
	WorkshopID  string          `json:"workshopID"`
	CreatedAt   time.Time       `json:"createdAt"`
}
