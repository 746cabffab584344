package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/flockhq/flock/internal/members/http"
	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/internal/members/store/drivers/sqlite"
	"github.com/flockhq/flock/pkg/cryptox"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/jwtx"
	"github.com/flockhq/flock/pkg/slogx"
	"github.com/stretchr/testify/require"
)

var testTokenSecret = []byte("0123456789abcdef0123456789abcdef")

// newTestServer wires a full in-process service around an in-memory
// store and returns an SDK client pointed at it.
func newTestServer(t *testing.T) *flocksdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hasher := cryptox.NewHasher(cryptox.Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}, "test-pepper")

	logger := slogx.New(slogx.Config{
		Service: "flock-test",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter(
		jwtx.NewVerifierHS256(testTokenSecret, "flock-test"),
		"test",
		st,
		logger,
	)
	router.AuthService = &service.AuthService{
		Store:     st,
		Hasher:    hasher,
		Signer:    jwtx.NewSignerHS256(testTokenSecret),
		Issuer:    "flock-test",
		AccessTTL: 15 * time.Minute,
	}
	router.ChurchService = &service.ChurchService{Store: st}
	router.PersonService = &service.PersonService{Store: st}
	router.RoleService = &service.RoleService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return flocksdk.NewClient(srv.URL)
}

// seedReferenceData creates the church and role a registration needs.
func seedReferenceData(t *testing.T, ctx context.Context, client *flocksdk.Client) (*flocksdk.ChurchInfo, *flocksdk.RoleInfo) {
	t.Helper()

	church, err := client.CreateChurch(ctx, flocksdk.CreateChurchRequest{Name: "Grace Chapel"})
	require.NoError(t, err)

	role, err := client.CreateRole(ctx, flocksdk.CreateRoleRequest{
		Name:        "member",
		Permissions: []string{"profile:read"},
	})
	require.NoError(t, err)

	return church, role
}

func aliceRegistration(church *flocksdk.ChurchInfo, role *flocksdk.RoleInfo) flocksdk.RegisterRequest {
	return flocksdk.RegisterRequest{
		Username:   "alice",
		Password:   "s3cret-passphrase",
		ChurchName: church.Name,
		RoleID:     role.RoleID,
		Firstname:  "Alice",
		Lastname:   "Mensah",
		Email:      "alice@example.com",
	}
}

func TestHealthEndpoints(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)

	resp, err := http.Get(client.BaseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()
	church, role := seedReferenceData(t, ctx, client)

	user, err := client.Register(ctx, aliceRegistration(church, role))
	require.NoError(t, err)
	require.NotEmpty(t, user.UserID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "Alice", user.Person.Firstname)
	require.Equal(t, church.ChurchID, user.Church.ChurchID)
	require.Equal(t, role.RoleID, user.Role.RoleID)

	session, err := client.Login(ctx, flocksdk.LoginRequest{
		Username:   "alice",
		Password:   "s3cret-passphrase",
		ChurchName: church.Name,
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())
	require.False(t, session.Expired())

	// The token works against the protected surface.
	list, err := session.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	require.Equal(t, "alice", list.Users[0].Username)
	require.Equal(t, "member", list.Users[0].Role)

	detail, err := session.GetUser(ctx, user.UserID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", detail.Person.Email)
}

func TestRegisterConflictsAndUnknownChurch(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()
	church, role := seedReferenceData(t, ctx, client)

	_, err := client.Register(ctx, aliceRegistration(church, role))
	require.NoError(t, err)

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		dup := aliceRegistration(church, role)
		dup.Email = "alice2@example.com"
		_, err := client.Register(ctx, dup)

		var apiErr *flocksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, flocksdk.ErrorCodeConflict, apiErr.Code)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := aliceRegistration(church, role)
		dup.Username = "alice2"
		_, err := client.Register(ctx, dup)

		var apiErr *flocksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	})

	t.Run("unknown church is a bad request", func(t *testing.T) {
		req := aliceRegistration(church, role)
		req.Username = "bob"
		req.Email = "bob@example.com"
		req.ChurchName = "No Such Chapel"
		_, err := client.Register(ctx, req)

		var apiErr *flocksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, flocksdk.ErrorCodeInvalidChurch, apiErr.Code)
	})
}

func TestLoginFailuresAreUndifferentiated(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()
	church, role := seedReferenceData(t, ctx, client)

	_, err := client.Register(ctx, aliceRegistration(church, role))
	require.NoError(t, err)

	attempts := []flocksdk.LoginRequest{
		{Username: "alice", Password: "wrong", ChurchName: church.Name},
		{Username: "nobody", Password: "s3cret-passphrase", ChurchName: church.Name},
		{Username: "alice", Password: "s3cret-passphrase", ChurchName: "Wrong Chapel"},
	}

	for _, attempt := range attempts {
		_, err := client.Login(ctx, attempt)

		var apiErr *flocksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, flocksdk.ErrorCodeInvalidCredentials, apiErr.Code)
		require.Equal(t, "invalid credentials", apiErr.Description)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	client := newTestServer(t)

	resp, err := http.Get(client.BaseURL + "/v1/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
}

func TestTokenForDeletedUserIsRejected(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()
	church, role := seedReferenceData(t, ctx, client)

	user, err := client.Register(ctx, aliceRegistration(church, role))
	require.NoError(t, err)

	session, err := client.Login(ctx, flocksdk.LoginRequest{
		Username:   "alice",
		Password:   "s3cret-passphrase",
		ChurchName: church.Name,
	})
	require.NoError(t, err)

	require.NoError(t, session.DeleteUser(ctx, user.UserID))

	// The token itself still verifies, but the subject no longer
	// resolves, so the guard fails closed.
	_, err = session.ListUsers(ctx)

	var apiErr *flocksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestPersonLifecycle(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()
	church, role := seedReferenceData(t, ctx, client)

	_, err := client.Register(ctx, aliceRegistration(church, role))
	require.NoError(t, err)

	session, err := client.Login(ctx, flocksdk.LoginRequest{
		Username:   "alice",
		Password:   "s3cret-passphrase",
		ChurchName: church.Name,
	})
	require.NoError(t, err)

	phone := "+233201234567"
	person, err := session.CreatePerson(ctx, flocksdk.CreatePersonRequest{
		Firstname: "Kofi",
		Lastname:  "Boateng",
		Email:     "kofi@example.com",
		Phone:     &phone,
	})
	require.NoError(t, err)
	require.NotEmpty(t, person.PersonID)
	require.Equal(t, &phone, person.Phone)

	// Patch one field; everything else keeps its value.
	lastname := "Owusu-Boateng"
	updated, err := session.UpdatePerson(ctx, person.PersonID, flocksdk.UpdatePersonRequest{
		Lastname: &lastname,
	})
	require.NoError(t, err)
	require.Equal(t, "Kofi", updated.Firstname)
	require.Equal(t, "Owusu-Boateng", updated.Lastname)
	require.Equal(t, &phone, updated.Phone)

	require.NoError(t, session.DeletePerson(ctx, person.PersonID))

	_, err = session.GetPerson(ctx, person.PersonID)
	var apiErr *flocksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestChurchAndRoleLifecycle(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()
	church, role := seedReferenceData(t, ctx, client)

	_, err := client.Register(ctx, aliceRegistration(church, role))
	require.NoError(t, err)

	session, err := client.Login(ctx, flocksdk.LoginRequest{
		Username:   "alice",
		Password:   "s3cret-passphrase",
		ChurchName: church.Name,
	})
	require.NoError(t, err)

	t.Run("duplicate church name conflicts", func(t *testing.T) {
		_, err := client.CreateChurch(ctx, flocksdk.CreateChurchRequest{Name: "Grace Chapel"})

		var apiErr *flocksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	})

	t.Run("rename church", func(t *testing.T) {
		renamed, err := session.RenameChurch(ctx, church.ChurchID, flocksdk.UpdateChurchRequest{Name: "Grace Cathedral"})
		require.NoError(t, err)
		require.Equal(t, "Grace Cathedral", renamed.Name)
	})

	t.Run("role patch", func(t *testing.T) {
		inactive := false
		updated, err := session.UpdateRole(ctx, role.RoleID, flocksdk.UpdateRoleRequest{Active: &inactive})
		require.NoError(t, err)
		require.False(t, updated.Active)
		require.Equal(t, "member", updated.Name)
	})

	t.Run("unknown role id is not found", func(t *testing.T) {
		_, err := session.GetRole(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")

		var apiErr *flocksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}
