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

type PgxServiceRepository struct {
	db *pgxpool.Pool
}

func newPgxServiceRepository(db *pgxpool.Pool) portsrepo.ServiceRepository {
	return &PgxServiceRepository{db: db}
}

var _ portsrepo.ServiceRepository = (*PgxServiceRepository)(nil)

func toModelService(d domain.Service) models.Service {
	return models.Service{
		ServiceID:   d.ServiceID,
		Description: d.Description,
		Price:       d.Price,
		SessionID:   d.SessionID,
		CustomerID:  d.CustomerID,
		WorkshopID:  d.WorkshopID,
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:   m.ServiceID,
		Description: m.Description,
		Price:       m.Price,
		SessionID:   m.SessionID,
		CustomerID:  m.CustomerID,
		WorkshopID:  m.WorkshopID,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	modelService := toModelService(service)
	query := `
        INSERT INTO services (service_id, description, price, session_id, customer_id, workshop_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		modelService.ServiceID,
		modelService.Description,
		modelService.Price,
		modelService.SessionID,
		modelService.CustomerID,
		modelService.WorkshopID,
		modelService.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string, workshopID string) (*domain.Service, error) {
	query := `
		SELECT service_id, description, price, session_id, customer_id, workshop_id, created_at
		FROM services
		WHERE service_id = $1 AND workshop_id = $2;
	`
	var modelService models.Service
	err := r.db.QueryRow(ctx, query, serviceID, workshopID).Scan(
		&modelService.ServiceID,
		&modelService.Description,
		&modelService.Price,
		&modelService.SessionID,
		&modelService.CustomerID,
		&modelService.WorkshopID,
		&modelService.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}

	domainService := toDomainService(modelService)
	return &domainService, nil
}

func (r *PgxServiceRepository) FindServicesBySession(ctx context.Context, sessionID string, workshopID string) ([]domain.Service, error) {
	query := `
        SELECT service_id, description, price, session_id, customer_id, workshop_id, created_at
        FROM services
        WHERE session_id = $1 AND workshop_id = $2
        ORDER BY created_at ASC;
    `
	return r.queryServices(ctx, query, sessionID, workshopID)
}

func (r *PgxServiceRepository) FindServicesByCustomer(ctx context.Context, customerID string, workshopID string) ([]domain.Service, error) {
	query := `
        SELECT service_id, description, price, session_id, customer_id, workshop_id, created_at
        FROM services
        WHERE customer_id = $1 AND workshop_id = $2
        ORDER BY created_at ASC;
    `
	return r.queryServices(ctx, query, customerID, workshopID)
}

func (r *PgxServiceRepository) queryServices(ctx context.Context, query string, args ...any) ([]domain.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		var modelService models.Service
		err := rows.Scan(
			&modelService.ServiceID,
			&modelService.Description,
			&modelService.Price,
			&modelService.SessionID,
			&modelService.CustomerID,
			&modelService.WorkshopID,
			&modelService.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, toDomainService(modelService))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", rows.Err())
	}

	return services, nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	modelService := toModelService(service)
	query := `
        UPDATE services
        SET description = $1, price = $2
        WHERE service_id = $3 AND workshop_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelService.Description,
		modelService.Price,
		modelService.ServiceID,
		modelService.WorkshopID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update service query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string, workshopID string) error {
	query := `DELETE FROM services WHERE service_id = $1 AND workshop_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, serviceID, workshopID)
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("service not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
