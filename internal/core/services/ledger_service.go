package services

import (
	"context"
	"fmt"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	customerRepo portsrepo.CustomerRepository
	sessionRepo  portsrepo.SessionRepository
	serviceRepo  portsrepo.ServiceRepository
	paymentRepo  portsrepo.PaymentRepository
}

// NewLedgerService creates the read-only debt aggregator.
//
// Aggregation is not transactional: a concurrent mutation of the same customer
// while a summary is being computed can mix pre- and post-mutation state. That
// read is eventually consistent, which is acceptable for this domain.
func NewLedgerService(
	customerRepo portsrepo.CustomerRepository,
	sessionRepo portsrepo.SessionRepository,
	serviceRepo portsrepo.ServiceRepository,
	paymentRepo portsrepo.PaymentRepository,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
		serviceRepo:  serviceRepo,
		paymentRepo:  paymentRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// SessionTotals sums the given line items and payments. Remaining may be
// negative (overpayment).
func SessionTotals(services []domain.Service, payments []domain.Payment) domain.SessionTotals {
	servicesTotal := decimal.Zero
	for _, service := range services {
		servicesTotal = servicesTotal.Add(service.Price)
	}

	paymentsTotal := decimal.Zero
	for _, payment := range payments {
		paymentsTotal = paymentsTotal.Add(payment.Amount)
	}

	return domain.SessionTotals{
		ServicesTotal: servicesTotal,
		PaymentsTotal: paymentsTotal,
		Remaining:     servicesTotal.Sub(paymentsTotal),
	}
}

func (s *ledgerService) GetCustomerSummary(ctx context.Context, customerID string, workshopID string) (*domain.CustomerSummary, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}

	sessions, err := s.sessionRepo.FindSessionsByCustomer(ctx, customerID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for customer %s: %w", customerID, err)
	}

	summary := domain.CustomerSummary{
		Customer:      *customer,
		Sessions:      make([]domain.SessionStatement, 0, len(sessions)),
		TotalServices: decimal.Zero,
		TotalPayments: decimal.Zero,
		RemainingDebt: decimal.Zero,
	}

	for _, session := range sessions {
		services, err := s.serviceRepo.FindServicesBySession(ctx, session.SessionID, workshopID)
		if err != nil {
			return nil, fmt.Errorf("failed to list services for session %s: %w", session.SessionID, err)
		}
		payments, err := s.paymentRepo.FindPaymentsBySession(ctx, session.SessionID, workshopID)
		if err != nil {
			return nil, fmt.Errorf("failed to list payments for session %s: %w", session.SessionID, err)
		}

		totals := SessionTotals(services, payments)
		summary.Sessions = append(summary.Sessions, domain.SessionStatement{
			Session:  session,
			Services: services,
			Payments: payments,
			Totals:   totals,
		})

		summary.TotalServices = summary.TotalServices.Add(totals.ServicesTotal)
		summary.TotalPayments = summary.TotalPayments.Add(totals.PaymentsTotal)
	}

	summary.RemainingDebt = summary.TotalServices.Sub(summary.TotalPayments)
	return &summary, nil
}

func (s *ledgerService) GetDashboard(ctx context.Context, workshopID string) ([]domain.DashboardRow, error) {
	customers, err := s.customerRepo.FindCustomersByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	rows := make([]domain.DashboardRow, 0, len(customers))
	for _, customer := range customers {
		services, err := s.serviceRepo.FindServicesByCustomer(ctx, customer.CustomerID, workshopID)
		if err != nil {
			return nil, fmt.Errorf("failed to list services for customer %s: %w", customer.CustomerID, err)
		}
		payments, err := s.paymentRepo.FindPaymentsByCustomer(ctx, customer.CustomerID, workshopID)
		if err != nil {
			return nil, fmt.Errorf("failed to list payments for customer %s: %w", customer.CustomerID, err)
		}
		sessions, err := s.sessionRepo.FindSessionsByCustomer(ctx, customer.CustomerID, workshopID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions for customer %s: %w", customer.CustomerID, err)
		}

		// Customer-level debt counts every service and payment, including
		// payments not linked to any session.
		totals := SessionTotals(services, payments)
		rows = append(rows, domain.DashboardRow{
			Customer:     customer,
			TotalDebt:    totals.Remaining,
			ServiceCount: len(services),
			PaymentCount: len(payments),
			SessionCount: len(sessions),
		})
	}

	return rows, nil
}
