package flocksdk

import "time"

// ErrorResponse is used for parsing HTTP error responses. Client code
// should use the APIError type from errors.go instead.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest is the POST /v1/auth/register payload: the account
// fields plus the person profile created alongside.
type RegisterRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	ChurchName string  `json:"church_name"`
	RoleID     string  `json:"role_id"`
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
}

// LoginRequest is the POST /v1/auth/login payload.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	ChurchName string `json:"church_name"`
}

// TokenResponse is returned from a successful login.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token.
	ExpiresIn int `json:"expires_in"`
}

// ChurchInfo is the wire shape of a church.
type ChurchInfo struct {
	ChurchID  string    `json:"church_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PersonInfo is the wire shape of a person profile. Optional fields are
// omitted when unset.
type PersonInfo struct {
	PersonID    string     `json:"person_id"`
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	CivilStatus *string    `json:"civil_status,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Address     *string    `json:"address,omitempty"`
	PlaceOfWork *string    `json:"place_of_work,omitempty"`
	AgeGroup    *string    `json:"age_group,omitempty"`
	Country     *string    `json:"country,omitempty"`
	District    *string    `json:"district,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RoleInfo is the wire shape of a role.
type RoleInfo struct {
	RoleID      string    `json:"role_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserResponse is the hydrated user aggregate: account plus nested
// person, role and church. There is intentionally no hash field.
type UserResponse struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Person    PersonInfo `json:"person"`
	Role      RoleInfo   `json:"role"`
	Church    ChurchInfo `json:"church"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UserSummary is one row of the member directory listing.
type UserSummary struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// ListUsersResponse wraps the member directory listing.
type ListUsersResponse struct {
	Users []UserSummary `json:"users"`
}

// CreateChurchRequest creates a church; UpdateChurchRequest renames one.
type CreateChurchRequest struct {
	Name string `json:"name"`
}

type UpdateChurchRequest struct {
	Name string `json:"name"`
}

// CreatePersonRequest creates a standalone person profile.
type CreatePersonRequest struct {
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	CivilStatus *string    `json:"civil_status,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Address     *string    `json:"address,omitempty"`
	PlaceOfWork *string    `json:"place_of_work,omitempty"`
	AgeGroup    *string    `json:"age_group,omitempty"`
	Country     *string    `json:"country,omitempty"`
	District    *string    `json:"district,omitempty"`
}

// UpdatePersonRequest patches a person; nil fields are left unchanged.
type UpdatePersonRequest struct {
	Firstname   *string    `json:"firstname,omitempty"`
	Lastname    *string    `json:"lastname,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	CivilStatus *string    `json:"civil_status,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Address     *string    `json:"address,omitempty"`
	PlaceOfWork *string    `json:"place_of_work,omitempty"`
	AgeGroup    *string    `json:"age_group,omitempty"`
	Country     *string    `json:"country,omitempty"`
	District    *string    `json:"district,omitempty"`
}

// CreateRoleRequest creates a role.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// UpdateRoleRequest patches a role; nil fields are left unchanged.
type UpdateRoleRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// UpdateUserRequest patches a user account; nil fields are left
// unchanged. Password changes are out of scope for this endpoint.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	RoleID   *string `json:"role_id,omitempty"`
}

// HealthResponse is returned from the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
