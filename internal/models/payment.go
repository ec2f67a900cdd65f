package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database row shape for a payment.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description sql.NullString  `db:"description"`
	SessionID   sql.NullString  `db:"session_id"`
	CustomerID  string          `db:"customer_id"`
	WorkshopID  string          `db:"workshop_id"`
	PaymentDate time.Time       `db:"payment_date"`
}
