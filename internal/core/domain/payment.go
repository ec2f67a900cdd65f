package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a write-once record of money received from a customer.
// SessionID is optional: a payment may settle a specific session or simply be
// attached to the customer.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	SessionID   *string         `json:"sessionID,omitempty"`
	CustomerID  string          `json:"customerID"`
	WorkshopID  string          `json:"workshopID"`
	PaymentDate time.Time       `json:"paymentDate"`
}
