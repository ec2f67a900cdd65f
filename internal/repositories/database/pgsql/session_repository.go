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

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{db: db}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func toModelSession(d domain.ServiceSession) models.ServiceSession {
	return models.ServiceSession{
		SessionID:   d.SessionID,
		SessionName: d.SessionName,
		SessionDate: d.SessionDate,
		CustomerID:  d.CustomerID,
		WorkshopID:  d.WorkshopID,
	}
}

func toDomainSession(m models.ServiceSession) domain.ServiceSession {
	return domain.ServiceSession{
		SessionID:   m.SessionID,
		SessionName: m.SessionName,
		SessionDate: m.SessionDate,
		CustomerID:  m.CustomerID,
		WorkshopID:  m.WorkshopID,
	}
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.ServiceSession) error {
	modelSession := toModelSession(session)
	query := `
        INSERT INTO service_sessions (session_id, session_name, session_date, customer_id, workshop_id)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		modelSession.SessionID,
		modelSession.SessionName,
		modelSession.SessionDate,
		modelSession.CustomerID,
		modelSession.WorkshopID,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string, workshopID string) (*domain.ServiceSession, error) {
	query := `
		SELECT session_id, session_name, session_date, customer_id, workshop_id
		FROM service_sessions
		WHERE session_id = $1 AND workshop_id = $2;
	`
	var modelSession models.ServiceSession
	err := r.db.QueryRow(ctx, query, sessionID, workshopID).Scan(
		&modelSession.SessionID,
		&modelSession.SessionName,
		&modelSession.SessionDate,
		&modelSession.CustomerID,
		&modelSession.WorkshopID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session by ID %s: %w", sessionID, err)
	}

	domainSession := toDomainSession(modelSession)
	return &domainSession, nil
}

func (r *PgxSessionRepository) FindSessionsByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.ServiceSession, error) {
	// Newest-first: summaries and statements show the latest visit on top.
	query := `
        SELECT session_id, session_name, session_date, customer_id, workshop_id
        FROM service_sessions
        WHERE customer_id = $1 AND workshop_id = $2
        ORDER BY session_date DESC;
    `
	rows, err := r.db.Query(ctx, query, customerID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.ServiceSession{}
	for rows.Next() {
		var modelSession models.ServiceSession
		err := rows.Scan(
			&modelSession.SessionID,
			&modelSession.SessionName,
			&modelSession.SessionDate,
			&modelSession.CustomerID,
			&modelSession.WorkshopID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, toDomainSession(modelSession))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", rows.Err())
	}

	return sessions, nil
}
