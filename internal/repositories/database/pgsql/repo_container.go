package pgsql

import (
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgx-backed repositories over one pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(db),
		CustomerRepo: newPgxCustomerRepository(db),
		SessionRepo:  newPgxSessionRepository(db),
		ServiceRepo:  newPgxServiceRepository(db),
		PaymentRepo:  newPgxPaymentRepository(db),
	}
}
