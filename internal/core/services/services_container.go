package services

import (
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	portssvc "github.com/bengkelku/workshop_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		Customer:     NewCustomerService(repos.CustomerRepo),
		Session:      NewSessionService(repos.SessionRepo, repos.CustomerRepo),
		ServiceEntry: NewServiceEntryService(repos.ServiceRepo, repos.SessionRepo),
		Payment:      NewPaymentService(repos.PaymentRepo, repos.CustomerRepo, repos.SessionRepo),
		Ledger:       NewLedgerService(repos.CustomerRepo, repos.SessionRepo, repos.ServiceRepo, repos.PaymentRepo),
		Statement:    NewStatementService(),
	}
}
