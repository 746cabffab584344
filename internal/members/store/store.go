package store

import (
	"context"
	"errors"

	"github.com/flockhq/flock/internal/members/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories per entity to keep
// concerns tidy and testable.
type Store interface {
	Churches() Churches
	Persons() Persons
	Roles() Roles
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// mechanism behind registration's all-or-nothing Person+User write.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Churches interface {
	// CreateChurch inserts a new church (id provided by app via ULID).
	// Fails with ErrAlreadyExists when the name is taken.
	CreateChurch(ctx context.Context, c domain.Church) error

	// GetChurchByID returns a church by id.
	GetChurchByID(ctx context.Context, id string) (domain.Church, error)

	// GetChurchByName resolves the login/registration church name.
	// Comparison is a case-sensitive exact match.
	GetChurchByName(ctx context.Context, name string) (domain.Church, error)

	// ListChurches returns all churches ordered by creation.
	ListChurches(ctx context.Context) ([]domain.Church, error)

	// RenameChurch updates the name and bumps updated_at.
	RenameChurch(ctx context.Context, id, name string) error

	// DeleteChurch removes a church. Fails while users still reference it.
	DeleteChurch(ctx context.Context, id string) error
}

type Persons interface {
	// CreatePerson inserts a new person record. Fails with
	// ErrAlreadyExists when the email is taken.
	CreatePerson(ctx context.Context, p domain.Person) error

	// GetPersonByID returns a person by id.
	GetPersonByID(ctx context.Context, id string) (domain.Person, error)

	// GetPersonByEmail is the registration duplicate-email pre-check.
	GetPersonByEmail(ctx context.Context, email string) (domain.Person, error)

	// ListPersons returns all persons ordered by creation.
	ListPersons(ctx context.Context) ([]domain.Person, error)

	// UpdatePerson overwrites the mutable profile fields.
	UpdatePerson(ctx context.Context, p domain.Person) error

	// DeletePerson removes a person. Fails while a user still owns it.
	DeletePerson(ctx context.Context, id string) error
}

type Roles interface {
	// CreateRole inserts a new role (id is ULID).
	CreateRole(ctx context.Context, r domain.Role) error

	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// ListRoles returns all roles in the system.
	ListRoles(ctx context.Context) ([]domain.Role, error)

	// UpdateRole overwrites name, description, permissions and active flag.
	UpdateRole(ctx context.Context, r domain.Role) error

	// DeleteRole removes a role. Fails while users still reference it.
	DeleteRole(ctx context.Context, id string) error
}

type Users interface {
	// CreateUser inserts a new user. The role, church and person ids must
	// already exist; the FK constraints are the final arbiter.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns the raw user row (hash included) by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during registration pre-checks and login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserDetailByID returns the hydrated aggregate (person, role,
	// church joined in, hash projected out).
	GetUserDetailByID(ctx context.Context, id string) (domain.UserDetail, error)

	// ListUserSummaries returns the projected member directory view.
	ListUserSummaries(ctx context.Context) ([]domain.UserSummary, error)

	// UpdateUser changes username and/or role and bumps updated_at.
	UpdateUser(ctx context.Context, id, username, roleID string) error

	// DeleteUser removes the account. The owned person record stays; it
	// is profile data, not a credential.
	DeleteUser(ctx context.Context, id string) error
}
