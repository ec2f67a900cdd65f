package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is the database row shape for a billable line item.
type Service struct {
	ServiceID   string          `db:"service_id"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	SessionID   string          `db:"session_id"`
	CustomerID  string          `db:"customer_id"`
	WorkshopID  string          `db:"workshop_id"`
	CreatedAt   time.Time       `db:"created_at"`
}
