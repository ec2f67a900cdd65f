package dto

import (
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SessionStatementResponse is one session block of a customer summary.
type SessionStatementResponse struct {
	Session       SessionResponse   `json:"session"`
	Services      []ServiceResponse `json:"services"`
	Payments      []PaymentResponse `json:"payments"`
	ServicesTotal decimal.Decimal   `json:"services_total"`
	PaymentsTotal decimal.Decimal   `json:"payments_total"`
	RemainingDebt decimal.Decimal   `json:"remaining_debt"`
}

// CustomerSummaryResponse is the full ledger view for one customer.
type CustomerSummaryResponse struct {
	Customer            CustomerResponse           `json:"customer"`
	ServiceSessions     []SessionStatementResponse `json:"service_sessions"`
	TotalServicesAmount decimal.Decimal            `json:"total_services_amount"`
	TotalPaymentsAmount decimal.Decimal            `json:"total_payments_amount"`
	RemainingDebt       decimal.Decimal            `json:"remaining_debt"`
}

// DashboardRowResponse is one customer's line of the workshop dashboard.
type DashboardRowResponse struct {
	Customer             CustomerResponse `json:"customer"`
	TotalDebt            decimal.Decimal  `json:"total_debt"`
	TotalServices        int              `json:"total_services"`
	TotalPayments        int              `json:"total_payments"`
	TotalServiceSessions int              `json:"total_service_sessions"`
}

// DashboardResponse wraps the per-customer dashboard rows.
type DashboardResponse struct {
	Customers []DashboardRowResponse `json:"customers"`
}

// WhatsAppMessageResponse carries the rendered statement and its deep link.
type WhatsAppMessageResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// ToSessionStatementResponse converts one domain session statement.
func ToSessionStatementResponse(statement *domain.SessionStatement) SessionStatementResponse {
	return SessionStatementResponse{
		Session:       ToSessionResponse(&statement.Session),
		Services:      ToServiceResponses(statement.Services),
		Payments:      ToPaymentResponses(statement.Payments),
		ServicesTotal: statement.Totals.ServicesTotal,
		PaymentsTotal: statement.Totals.PaymentsTotal,
		RemainingDebt: statement.Totals.Remaining,
	}
}

// ToCustomerSummaryResponse converts a domain customer summary.
func ToCustomerSummaryResponse(summary *domain.CustomerSummary) CustomerSummaryResponse {
	statements := make([]SessionStatementResponse, len(summary.Sessions))
	for i := range summary.Sessions {
		statements[i] = ToSessionStatementResponse(&summary.Sessions[i])
	}
	return CustomerSummaryResponse{
		Customer:            ToCustomerResponse(&summary.Customer),
		ServiceSessions:     statements,
		TotalServicesAmount: summary.TotalServices,
		TotalPaymentsAmount: summary.TotalPayments,
		RemainingDebt:       summary.RemainingDebt,
	}
}

// ToDashboardResponse converts the domain dashboard rows.
func ToDashboardResponse(rows []domain.DashboardRow) DashboardResponse {
	responses := make([]DashboardRowResponse, len(rows))
	for i := range rows {
		responses[i] = DashboardRowResponse{
			Customer:             ToCustomerResponse(&rows[i].Customer),
			TotalDebt:            rows[i].TotalDebt,
			TotalServices:        rows[i].ServiceCount,
			TotalPayments:        rows[i].PaymentCount,
			TotalServiceSessions: rows[i].SessionCount,
		}
	}
	return DashboardResponse{Customers: responses}
}

// ToWhatsAppMessageResponse converts a rendered statement.
func ToWhatsAppMessageResponse(statement *domain.WhatsAppStatement) WhatsAppMessageResponse {
	return WhatsAppMessageResponse{
		Message:     statement.Message,
		WhatsAppURL: statement.WhatsAppURL,
	}
}
