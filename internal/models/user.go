package models

import (
	"database/sql"
	"time"
)

// User is the database row shape for an account.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Email        sql.NullString `db:"email"`
	Role         string         `db:"role"`
	WorkshopID   string         `db:"workshop_id"`
	WorkshopName sql.NullString `db:"workshop_name"`
	CreatedAt    time.Time      `db:"created_at"`
}
