package domain

import "github.com/shopspring/decimal"

// SessionTotals holds the aggregates for one service session.
// Remaining may be negative (overpayment); that is a displayable state, not an
// error.
type SessionTotals struct {
	ServicesTotal decimal.Decimal `json:"servicesTotal"`
	PaymentsTotal decimal.Decimal `json:"paymentsTotal"`
	Remaining     decimal.Decimal `json:"remaining"`
}

// SessionStatement is one session of a customer summary with its line items,
// payments and totals.
type SessionStatement struct {
	Session  ServiceSession `json:"session"`
	Services []Service      `json:"services"`
	Payments []Payment      `json:"payments"`
	Totals   SessionTotals  `json:"totals"`
}

// CustomerSummary is the full ledger for one customer: every session
// (newest-first) plus grand totals across sessions.
type CustomerSummary struct {
	Customer      Customer           `json:"customer"`
	Sessions      []SessionStatement `json:"sessions"`
	TotalServices decimal.Decimal    `json:"totalServices"`
	TotalPayments decimal.Decimal    `json:"totalPayments"`
	RemainingDebt decimal.Decimal    `json:"remainingDebt"`
}

// DashboardRow is the per-customer overview line for a workshop: outstanding
// debt plus simple cardinalities.
type DashboardRow struct {
	Customer     Customer        `json:"customer"`
	TotalDebt    decimal.Decimal `json:"totalDebt"`
	ServiceCount int             `json:"serviceCount"`
	PaymentCount int             `json:"paymentCount"`
	SessionCount int             `json:"sessionCount"`
}

// WhatsAppStatement is a rendered statement message plus its wa.me deep link.
type WhatsAppStatement struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
