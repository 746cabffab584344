package service

import (
	"context"
	"testing"
	"time"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/store"
	"github.com/flockhq/flock/internal/members/store/drivers/sqlite"
	"github.com/flockhq/flock/pkg/cryptox"
	"github.com/flockhq/flock/pkg/idx"
	"github.com/flockhq/flock/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testTokenSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestHasher() *cryptox.Hasher {
	// Cheap parameters keep the suite fast.
	return cryptox.NewHasher(cryptox.Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}, "test-pepper")
}

func newAuthService(st store.Store) *AuthService {
	return &AuthService{
		Store:     st,
		Hasher:    newTestHasher(),
		Signer:    jwtx.NewSignerHS256(testTokenSecret),
		Issuer:    "flock-test",
		AccessTTL: 15 * time.Minute,
	}
}

// seedChurchAndRole inserts the reference data registration depends on.
func seedChurchAndRole(t *testing.T, st store.Store) (domain.Church, domain.Role) {
	t.Helper()
	ctx := context.Background()

	church := domain.Church{ID: idx.New().String(), Name: "Grace Chapel"}
	require.NoError(t, st.Churches().CreateChurch(ctx, church))
	church, err := st.Churches().GetChurchByID(ctx, church.ID)
	require.NoError(t, err)

	role := domain.Role{ID: idx.New().String(), Name: "member", Permissions: []string{"profile:read"}, Active: true}
	require.NoError(t, st.Roles().CreateRole(ctx, role))
	role, err = st.Roles().GetRoleByID(ctx, role.ID)
	require.NoError(t, err)

	return church, role
}

func aliceParams(church domain.Church, role domain.Role) RegisterParams {
	return RegisterParams{
		Username:   "alice",
		Password:   "s3cret-passphrase",
		ChurchName: church.Name,
		RoleID:     role.ID,
		Firstname:  "Alice",
		Lastname:   "Mensah",
		Email:      "alice@example.com",
	}
}

func TestRegisterCreatesLinkedPersonAndUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	detail, err := svc.Register(ctx, aliceParams(church, role))
	require.NoError(t, err)

	require.NotEmpty(t, detail.ID)
	require.Equal(t, "alice", detail.Username)
	require.Equal(t, "Alice", detail.Person.Firstname)
	require.Equal(t, "alice@example.com", detail.Person.Email)
	require.Equal(t, role.ID, detail.Role.ID)
	require.Equal(t, church.ID, detail.Church.ID)

	// The stored hash is argon2id, never the plaintext.
	user, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-passphrase", user.PasswordHash)
	require.Contains(t, user.PasswordHash, "$argon2id$")
	require.Equal(t, detail.Person.ID, user.PersonID)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	_, err := svc.Register(ctx, aliceParams(church, role))
	require.NoError(t, err)

	dup := aliceParams(church, role)
	dup.Email = "alice2@example.com"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrUsernameTaken)

	// The duplicate attempt must not leave an orphaned person behind.
	_, err = st.Persons().GetPersonByEmail(ctx, "alice2@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	_, err := svc.Register(ctx, aliceParams(church, role))
	require.NoError(t, err)

	dup := aliceParams(church, role)
	dup.Username = "alice2"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = st.Users().GetUserByUsername(ctx, "alice2")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegisterRejectsUnknownChurch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	p := aliceParams(church, role)
	p.ChurchName = "No Such Chapel"
	_, err := svc.Register(ctx, p)
	require.ErrorIs(t, err, ErrUnknownChurch)
}

func TestRegisterChurchNameIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	p := aliceParams(church, role)
	p.ChurchName = "grace chapel"
	_, err := svc.Register(ctx, p)
	require.ErrorIs(t, err, ErrUnknownChurch)
}

func TestRegisterRollsBackOnUserInsertFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	// A dangling role id makes the user insert violate its foreign key
	// after the person insert succeeded; the whole write must unwind.
	p := aliceParams(church, role)
	p.RoleID = idx.New().String()
	_, err := svc.Register(ctx, p)
	require.ErrorIs(t, err, ErrRegistrationFailed)

	_, err = st.Persons().GetPersonByEmail(ctx, "alice@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(st)
	church, role := seedChurchAndRole(t, st)

	_, err := svc.Register(ctx, aliceParams(church, role))
	require.NoError(t, err)

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		grant, err := svc.Authenticate(ctx, "alice", "s3cret-passphrase", church.Name)
		require.NoError(t, err)
		require.NotEmpty(t, grant.AccessToken)
		require.Equal(t, "Bearer", grant.TokenType)
		require.Equal(t, 15*time.Minute, grant.ExpiresIn)
	})

	t.Run("token carries subject and username", func(t *testing.T) {
		grant, err := svc.Authenticate(ctx, "alice", "s3cret-passphrase", church.Name)
		require.NoError(t, err)

		verifier := jwtx.NewVerifierHS256(testTokenSecret, "flock-test")
		claims, err := verifier.Verify(grant.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "alice", claims.Username)

		user, err := st.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
	})

	// Wrong password, wrong church, unknown username and case drift all
	// collapse into the same error so callers learn nothing.
	failures := []struct {
		name       string
		username   string
		password   string
		churchName string
	}{
		{"wrong password", "alice", "wrong", church.Name},
		{"wrong church", "alice", "s3cret-passphrase", "Other Chapel"},
		{"church name case mismatch", "alice", "s3cret-passphrase", "grace chapel"},
		{"unknown username", "nobody", "s3cret-passphrase", church.Name},
		{"username case mismatch", "Alice", "s3cret-passphrase", church.Name},
		{"password case mismatch", "alice", "S3cret-passphrase", church.Name},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.username, tt.password, tt.churchName)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
