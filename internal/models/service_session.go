package models

import "time"

// ServiceSession is the database row shape for a service session.
type ServiceSession struct {
	SessionID   string    `db:"session_id"`
	SessionName string    `db:"session_name"`
	SessionDate time.Time `db:"session_date"`
	CustomerID  string    `db:"customer_id"`
	WorkshopID  string    `db:"workshop_id"`
}
