package domain

import "time"

// UserSnapshot is a shallow copy of a user's display fields, embedded in
// messages and conversations so clients can render without extra lookups.
type UserSnapshot struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// JobSnapshot carries the job fields the messaging system needs.
type JobSnapshot struct {
	ID         string
	Title      string
	EmployerID string
}

// Application is the view of an application record owned by the external
// job-board system.
type Application struct {
	ID        string
	JobID     string
	UserID    string
	Status    string
	CreatedAt time.Time
}
