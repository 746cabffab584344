package flocksdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated client. Tokens are not refreshable; when
// the session expires the caller logs in again.
type Session struct {
	client      *Client
	accessToken string
	expiresAt   time.Time
}

func newSession(client *Client, token *TokenResponse) *Session {
	return &Session{
		client:      client,
		accessToken: token.AccessToken,
		expiresAt:   time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}
}

// AccessToken exposes the raw bearer token, mainly for tests.
func (s *Session) AccessToken() string { return s.accessToken }

// Expired reports whether the session's token lifetime has elapsed.
func (s *Session) Expired() bool { return time.Now().After(s.expiresAt) }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.doJSON(ctx, method, path, body, s.accessToken)
}

// Churches

func (s *Session) CreateChurch(ctx context.Context, req CreateChurchRequest) (*ChurchInfo, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/churches", req)
	if err != nil {
		return nil, err
	}
	var church ChurchInfo
	if err := decodeJSON(resp, &church, http.StatusCreated); err != nil {
		return nil, err
	}
	return &church, nil
}

func (s *Session) ListChurches(ctx context.Context) ([]ChurchInfo, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/churches", nil)
	if err != nil {
		return nil, err
	}
	var churches []ChurchInfo
	if err := decodeJSON(resp, &churches, http.StatusOK); err != nil {
		return nil, err
	}
	return churches, nil
}

func (s *Session) GetChurch(ctx context.Context, id string) (*ChurchInfo, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/churches/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var church ChurchInfo
	if err := decodeJSON(resp, &church, http.StatusOK); err != nil {
		return nil, err
	}
	return &church, nil
}

func (s *Session) RenameChurch(ctx context.Context, id string, req UpdateChurchRequest) (*ChurchInfo, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/v1/churches/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	var church ChurchInfo
	if err := decodeJSON(resp, &church, http.StatusOK); err != nil {
		return nil, err
	}
	return &church, nil
}

func (s *Session) DeleteChurch(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/churches/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// Persons

func (s *Session) CreatePerson(ctx context.Context, req CreatePersonRequest) (*PersonInfo, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/persons", req)
	if err != nil {
		return nil, err
	}
	var person PersonInfo
	if err := decodeJSON(resp, &person, http.StatusCreated); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *Session) ListPersons(ctx context.Context) ([]PersonInfo, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/persons", nil)
	if err != nil {
		return nil, err
	}
	var persons []PersonInfo
	if err := decodeJSON(resp, &persons, http.StatusOK); err != nil {
		return nil, err
	}
	return persons, nil
}

func (s *Session) GetPerson(ctx context.Context, id string) (*PersonInfo, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/persons/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var person PersonInfo
	if err := decodeJSON(resp, &person, http.StatusOK); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *Session) UpdatePerson(ctx context.Context, id string, req UpdatePersonRequest) (*PersonInfo, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/v1/persons/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	var person PersonInfo
	if err := decodeJSON(resp, &person, http.StatusOK); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *Session) DeletePerson(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/persons/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// Roles

func (s *Session) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleInfo, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/roles", req)
	if err != nil {
		return nil, err
	}
	var role RoleInfo
	if err := decodeJSON(resp, &role, http.StatusCreated); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Session) ListRoles(ctx context.Context) ([]RoleInfo, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/roles", nil)
	if err != nil {
		return nil, err
	}
	var roles []RoleInfo
	if err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Session) GetRole(ctx context.Context, id string) (*RoleInfo, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/roles/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var role RoleInfo
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Session) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*RoleInfo, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/v1/roles/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	var role RoleInfo
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Session) DeleteRole(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/roles/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// Users

func (s *Session) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/users", nil)
	if err != nil {
		return nil, err
	}
	var users ListUsersResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return &users, nil
}

func (s *Session) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	resp, err := s.do(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}
	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Session) DeleteUser(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusNoContent)
}

// String keeps sessions printable in test failures without leaking the
// whole token.
func (s *Session) String() string {
	tail := s.accessToken
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}
	return fmt.Sprintf("flocksdk.Session(…%s)", tail)
}
