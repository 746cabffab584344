// Package flocksdk is a small typed client for the Flock membership
// service, plus the request/response types the service itself serves.
// Keeping both in one package guarantees the client and server never
// drift apart on the wire format.
package flocksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a Flock service. It provides the unauthenticated
// operations (register, login, health) and creates authenticated
// Sessions for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new user account with its person profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", req, "")
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns an authenticated Session on success.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, "")
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := decodeJSON(resp, &token, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &token), nil
}

// CreateChurch creates a church. The endpoint is open so a fresh
// deployment can seed its first church before any account exists.
func (c *Client) CreateChurch(ctx context.Context, req CreateChurchRequest) (*ChurchInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/churches", req, "")
	if err != nil {
		return nil, err
	}

	var church ChurchInfo
	if err := decodeJSON(resp, &church, http.StatusCreated); err != nil {
		return nil, err
	}
	return &church, nil
}

// ListChurches lists all churches.
func (c *Client) ListChurches(ctx context.Context) ([]ChurchInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/churches", nil, "")
	if err != nil {
		return nil, err
	}

	var churches []ChurchInfo
	if err := decodeJSON(resp, &churches, http.StatusOK); err != nil {
		return nil, err
	}
	return churches, nil
}

// CreateRole creates a role. Open for the same bootstrap reason as
// CreateChurch: registration needs a role id before anyone can log in.
func (c *Client) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/roles", req, "")
	if err != nil {
		return nil, err
	}

	var role RoleInfo
	if err := decodeJSON(resp, &role, http.StatusCreated); err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles lists all roles.
func (c *Client) ListRoles(ctx context.Context) ([]RoleInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/v1/roles", nil, "")
	if err != nil {
		return nil, err
	}

	var roles []RoleInfo
	if err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}
	return roles, nil
}

// Health calls the liveness probe.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and optional
// bearer token.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	bearer string,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes the response body into v when the status matches
// wantStatus, and converts error responses into *APIError otherwise.
func decodeJSON(resp *http.Response, v any, wantStatus int) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatus drains the body and converts non-matching statuses into
// *APIError. For endpoints with no response body (deletes).
func checkStatus(resp *http.Response, wantStatus int) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func decodeError(resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
	}
}
