package flocksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/flockhq/flock/pkg/httpx"
)

// Error codes used across the API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidChurch      = "invalid_church"
	ErrorCodeConflict           = "conflict"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error shape the service returns. It implements the
// error interface so the SDK client can surface it directly, and the
// server uses it to write consistent HTTP error responses.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a safe, human-readable message. Internal detail
	// never travels here.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// Predefined API errors.
var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidChurch = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidChurch,
		Description: "church not found",
	}

	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "username already exists",
	}

	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "email already in use",
	}

	ErrNameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "name already exists",
	}

	// ErrInvalidCredentials is deliberately generic: wrong password,
	// wrong church and unknown username all look identical.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "an internal error occurred",
	}
)
