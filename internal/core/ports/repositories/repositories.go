package repositories

// RepositoryProvider bundles all repository implementations so they can be
// passed around as a unit when wiring services.
type RepositoryProvider struct {
	UserRepo     UserRepository
	CustomerRepo CustomerRepository
	SessionRepo  SessionRepository
	ServiceRepo  ServiceRepository
	PaymentRepo  PaymentRepository
}
