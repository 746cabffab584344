package domain

import "time"

// Role is a named permission grouping assigned to users. The permission
// list is stored space-delimited and is not interpreted by this service.
type Role struct {
	ID          string
	Name        string
	Description *string
	Permissions []string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
