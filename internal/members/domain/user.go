package domain

import "time"

// User is a login account. A user always resolves to exactly one church,
// one role and one person; (username, church) is the login key, with
// username unique on its own.
type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	RoleID       string
	ChurchID     string
	PersonID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserDetail is the hydrated read model for a user: the account joined
// with its person, role and church. It deliberately has no hash field so
// it can cross the API boundary as-is.
type UserDetail struct {
	ID        string
	Username  string
	Person    Person
	Role      Role
	Church    Church
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is the projected list view: enough to render a member
// directory without dragging full aggregates out of the store.
type UserSummary struct {
	ID        string
	Username  string
	Firstname string
	Lastname  string
	Email     string
	RoleName  string
}
