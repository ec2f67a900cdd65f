package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	"github.com/bengkelku/workshop_management_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	sessionID := sql.NullString{}
	if d.SessionID != nil {
		sessionID = sql.NullString{String: *d.SessionID, Valid: true}
	}
	return models.Payment{
		PaymentID:   d.PaymentID,
		Amount:      d.Amount,
		Description: toNullString(d.Description),
		SessionID:   sessionID,
		CustomerID:  d.CustomerID,
		WorkshopID:  d.WorkshopID,
		PaymentDate: d.PaymentDate,
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	var sessionID *string
	if m.SessionID.Valid {
		value := m.SessionID.String
		sessionID = &value
	}
	return domain.Payment{
		PaymentID:   m.PaymentID,
		Amount:      m.Amount,
		Description: m.Description.String,
		SessionID:   sessionID,
		CustomerID:  m.CustomerID,
		WorkshopID:  m.WorkshopID,
		PaymentDate: m.PaymentDate,
	}
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	modelPayment := toModelPayment(payment)
	query := `
        INSERT INTO payments (payment_id, amount, description, session_id, customer_id, workshop_id, payment_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.Amount,
		modelPayment.Description,
		modelPayment.SessionID,
		modelPayment.CustomerID,
		modelPayment.WorkshopID,
		modelPayment.PaymentDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentsBySession(ctx context.Context, sessionID string, workshopID string) ([]domain.Payment, error) {
	query := `
        SELECT payment_id, amount, description, session_id, customer_id, workshop_id, payment_date
        FROM payments
        WHERE session_id = $1 AND workshop_id = $2
        ORDER BY payment_date ASC;
    `
	return r.queryPayments(ctx, query, sessionID, workshopID)
}

func (r *PgxPaymentRepository) FindPaymentsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.Payment, error) {
	query := `
        SELECT payment_id, amount, description, session_id, customer_id, workshop_id, payment_date
        FROM payments
        WHERE customer_id = $1 AND workshop_id = $2
        ORDER BY payment_date ASC;
    `
	return r.queryPayments(ctx, query, customerID, workshopID)
}

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var modelPayment models.Payment
		err := rows.Scan(
			&modelPayment.PaymentID,
			&modelPayment.Amount,
			&modelPayment.Description,
			&modelPayment.SessionID,
			&modelPayment.CustomerID,
			&modelPayment.WorkshopID,
			&modelPayment.PaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(modelPayment))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}

	return payments, nil
}
