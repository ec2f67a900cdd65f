package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/bengkelku/workshop_management_app/internal/utils"
)

const (
	statementSeparator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	statementDateLong  = "02 January 2006"
	statementDateShort = "02/01/2006"
	whatsAppURLFormat  = "https://wa.me/%s?text=%s"
)

type statementService struct{}

// NewStatementService creates the statement formatter. It is pure: it renders
// from an already computed summary and performs no fetches.
func NewStatementService() portssvc.StatementSvcFacade {
	return &statementService{}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// BuildStatement renders the WhatsApp statement for a customer summary. With a
// sessionID only that session is itemized and its totals shown; otherwise all
// sessions are itemized with the grand totals across them.
func (s *statementService) BuildStatement(summary *domain.CustomerSummary, workshopName string, sessionID string) (*domain.WhatsAppStatement, error) {
	lines := []string{
		fmt.Sprintf("*%s*", workshopName),
		fmt.Sprintf("Detail Servis - %s", summary.Customer.Name),
		summary.Customer.Phone,
		time.Now().Format(statementDateLong),
		"",
		statementSeparator,
	}

	totals := domain.SessionTotals{}
	if sessionID != "" {
		statement := findSessionStatement(summary, sessionID)
		if statement == nil {
			return nil, fmt.Errorf("service session %s not found in summary: %w", sessionID, apperrors.ErrNotFound)
		}
		lines = append(lines, renderSessionBlock(statement)...)
		totals = statement.Totals
	} else {
		for i := range summary.Sessions {
			lines = append(lines, renderSessionBlock(&summary.Sessions[i])...)
			lines = append(lines, statementSeparator, "")
		}
		totals = domain.SessionTotals{
			ServicesTotal: summary.TotalServices,
			PaymentsTotal: summary.TotalPayments,
			Remaining:     summary.RemainingDebt,
		}
	}

	lines = append(lines,
		"*RINGKASAN:*",
		fmt.Sprintf("Total Servis: %s", utils.FormatRupiah(totals.ServicesTotal)),
		fmt.Sprintf("Total Bayar: %s", utils.FormatRupiah(totals.PaymentsTotal)),
		fmt.Sprintf("Sisa: %s", utils.FormatRupiah(totals.Remaining)),
		"",
	)

	if totals.Remaining.IsPositive() {
		lines = append(lines, "*Mohon segera melunasi sisa pembayaran*")
	} else {
		lines = append(lines, "*Pembayaran Lunas*")
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Terima kasih telah mempercayakan kendaraan Anda kepada %s!", workshopName),
	)

	message := strings.Join(lines, "\n")
	phone := utils.NormalizeWhatsAppPhone(summary.Customer.Phone)
	deepLink := fmt.Sprintf(whatsAppURLFormat, phone, url.QueryEscape(message))

	return &domain.WhatsAppStatement{
		Message:     message,
		WhatsAppURL: deepLink,
	}, nil
}

func findSessionStatement(summary *domain.CustomerSummary, sessionID string) *domain.SessionStatement {
	for i := range summary.Sessions {
		if summary.Sessions[i].Session.SessionID == sessionID {
			return &summary.Sessions[i]
		}
	}
	return nil
}

func renderSessionBlock(statement *domain.SessionStatement) []string {
	lines := []string{
		fmt.Sprintf("*%s*", statement.Session.SessionName),
		statement.Session.SessionDate.Format(statementDateLong),
		"",
	}

	if len(statement.Services) > 0 {
		lines = append(lines, "*DETAIL SERVIS:*")
		for _, service := range statement.Services {
			lines = append(lines, fmt.Sprintf("- %s", service.Description))
			lines = append(lines, fmt.Sprintf("  %s", utils.FormatRupiah(service.Price)))
		}
		lines = append(lines, "")
	}

	if len(statement.Payments) > 0 {
		lines = append(lines, "*PEMBAYARAN:*")
		for _, payment := range statement.Payments {
			entry := fmt.Sprintf("- %s - %s", payment.PaymentDate.Format(statementDateShort), utils.FormatRupiah(payment.Amount))
			if payment.Description != "" {
				entry += fmt.Sprintf(" (%s)", payment.Description)
			}
			lines = append(lines, entry)
		}
		lines = append(lines, "")
	}

	return lines
}
