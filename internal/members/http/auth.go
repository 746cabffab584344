package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/httpx"
	"github.com/flockhq/flock/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/register: create a linked person and
// account in one shot and return the hydrated user.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Username == "" || req.Password == "" || req.ChurchName == "" ||
		req.RoleID == "" || req.Firstname == "" || req.Lastname == "" || req.Email == "" {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	detail, err := h.AuthService.Register(ctx, service.RegisterParams{
		Username:   req.Username,
		Password:   req.Password,
		ChurchName: req.ChurchName,
		RoleID:     req.RoleID,
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			flocksdk.ErrUsernameTaken.WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			flocksdk.ErrEmailTaken.WriteError(w)
		case errors.Is(err, service.ErrUnknownChurch):
			flocksdk.ErrInvalidChurch.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			flocksdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(detail))
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/auth/login. All credential failures come
// back as the same 401 body.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Username == "" || req.Password == "" || req.ChurchName == "" {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	grant, err := h.AuthService.Authenticate(ctx, req.Username, req.Password, req.ChurchName)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			flocksdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		flocksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, flocksdk.TokenResponse{
		AccessToken: grant.AccessToken,
		TokenType:   grant.TokenType,
		ExpiresIn:   int(grant.ExpiresIn / time.Second),
	})
}
