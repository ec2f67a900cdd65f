package services

// ServiceContainer bundles all service facades for handler wiring.
type ServiceContainer struct {
	User         UserSvcFacade
	Customer     CustomerSvcFacade
	Session      SessionSvcFacade
	ServiceEntry ServiceEntrySvcFacade
	Payment      PaymentSvcFacade
	Ledger       LedgerSvcFacade
	Statement    StatementSvcFacade
}
