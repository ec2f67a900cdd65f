package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the database row shape for a customer.
type Customer struct {
	CustomerID string          `db:"customer_id"`
	Name       string          `db:"name"`
	Phone      string          `db:"phone"`
	WorkshopID string          `db:"workshop_id"`
	TotalDebt  decimal.Decimal `db:"total_debt"`
	CreatedAt  time.Time       `db:"created_at"`
}
