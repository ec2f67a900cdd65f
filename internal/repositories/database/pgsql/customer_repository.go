package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	"github.com/bengkelku/workshop_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: d.CustomerID,
		Name:       d.Name,
		Phone:      d.Phone,
		WorkshopID: d.WorkshopID,
		TotalDebt:  d.TotalDebt,
		CreatedAt:  d.CreatedAt,
	}
}

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Phone:      m.Phone,
		WorkshopID: m.WorkshopID,
		TotalDebt:  m.TotalDebt,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	modelCustomer := toModelCustomer(customer)
	query := `
        INSERT INTO customers (customer_id, name, phone, workshop_id, total_debt, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelCustomer.CustomerID,
		modelCustomer.Name,
		modelCustomer.Phone,
		modelCustomer.WorkshopID,
		modelCustomer.TotalDebt,
		modelCustomer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string, workshopID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, workshop_id, total_debt, created_at
		FROM customers
		WHERE customer_id = $1 AND workshop_id = $2;
	`
	var modelCustomer models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID, workshopID).Scan(
		&modelCustomer.CustomerID,
		&modelCustomer.Name,
		&modelCustomer.Phone,
		&modelCustomer.WorkshopID,
		&modelCustomer.TotalDebt,
		&modelCustomer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	domainCustomer := toDomainCustomer(modelCustomer)
	return &domainCustomer, nil
}

func (r *PgxCustomerRepository) FindCustomersByWorkshop(ctx context.Context, workshopID string) ([]domain.Customer, error) {
	query := `
        SELECT customer_id, name, phone, workshop_id, total_debt, created_at
        FROM customers
        WHERE workshop_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var modelCustomer models.Customer
		err := rows.Scan(
			&modelCustomer.CustomerID,
			&modelCustomer.Name,
			&modelCustomer.Phone,
			&modelCustomer.WorkshopID,
			&modelCustomer.TotalDebt,
			&modelCustomer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, toDomainCustomer(modelCustomer))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}

	return customers, nil
}

// DeleteCustomerCascade removes the customer together with its sessions,
// services and payments in one transaction. Children go first so a failure
// can never leave orphaned rows behind a deleted parent. Zero affected rows
// anywhere is still success: re-deleting is a no-op.
func (r *PgxCustomerRepository) DeleteCustomerCascade(ctx context.Context, customerID string, workshopID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	statements := []string{
		`DELETE FROM payments WHERE customer_id = $1 AND workshop_id = $2;`,
		`DELETE FROM services WHERE customer_id = $1 AND workshop_id = $2;`,
		`DELETE FROM service_sessions WHERE customer_id = $1 AND workshop_id = $2;`,
		`DELETE FROM customers WHERE customer_id = $1 AND workshop_id = $2;`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement, customerID, workshopID); err != nil {
			return fmt.Errorf("failed to cascade delete customer %s: %w", customerID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cascade delete for customer %s: %w", customerID, err)
	}
	return nil
}
