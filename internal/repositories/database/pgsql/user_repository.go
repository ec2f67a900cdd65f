package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bengkelku/workshop_management_app/internal/apperrors"
	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	portsrepo "github.com/bengkelku/workshop_management_app/internal/core/ports/repositories"
	"github.com/bengkelku/workshop_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Email:        toNullString(d.Email),
		Role:         string(d.Role),
		WorkshopID:   d.WorkshopID,
		WorkshopName: toNullString(d.WorkshopName),
		CreatedAt:    d.CreatedAt,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Email:        m.Email.String,
		Role:         domain.UserRole(m.Role),
		WorkshopID:   m.WorkshopID,
		WorkshopName: m.WorkshopName.String,
		CreatedAt:    m.CreatedAt,
	}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, password_hash, email, role, workshop_id, workshop_name, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Email,
		modelUser.Role,
		modelUser.WorkshopID,
		modelUser.WorkshopName,
		modelUser.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

const selectUserColumns = `user_id, username, password_hash, email, role, workshop_id, workshop_name, created_at`

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE user_id = $1;`
	return r.scanUser(r.db.QueryRow(ctx, query, userID), "ID "+userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE username = $1;`
	return r.scanUser(r.db.QueryRow(ctx, query, username), "username "+username)
}

func (r *PgxUserRepository) FindOwnerByWorkshopID(ctx context.Context, workshopID string) (*domain.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE workshop_id = $1 AND role = $2;`
	return r.scanUser(r.db.QueryRow(ctx, query, workshopID, string(domain.RoleOwner)), "workshop "+workshopID)
}

func (r *PgxUserRepository) scanUser(row pgx.Row, description string) (*domain.User, error) {
	var modelUser models.User
	err := row.Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Email,
		&modelUser.Role,
		&modelUser.WorkshopID,
		&modelUser.WorkshopName,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", description, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}
