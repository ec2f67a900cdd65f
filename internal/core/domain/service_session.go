package domain

import "time"

// ServiceSession is a single customer visit (work order) grouping zero or more
// services and zero or more payments.
type ServiceSession struct {
	SessionID   string    `json:"sessionID"` // Primary Key (UUID)
	SessionName string    `json:"sessionName"`
	SessionDate time.Time `json:"sessionDate"`
	CustomerID  string    `json:"customerID"`
	WorkshopID  string    `json:"workshopID"`
}
