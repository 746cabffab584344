package domain

import "time"

// Church is the tenant-like grouping that scopes usernames for login.
// Names are unique across the system.
type Church struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
