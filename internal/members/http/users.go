package http

import (
	"net/http"

	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/httpx"
	"github.com/flockhq/flock/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.List(ctx)
	if err != nil {
		writeStoreError(w, log, "failed to list users", err)
		return
	}

	response := flocksdk.ListUsersResponse{
		Users: make([]flocksdk.UserSummary, len(users)),
	}
	for i, u := range users {
		response.Users[i] = toUserSummary(u)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	detail, err := h.UserService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, log, "failed to get user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(detail))
}

// HandleUpdate patches the account fields of a user. Person data is
// edited through the persons endpoints instead.
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	current, err := h.UserService.Resolve(ctx, id)
	if err != nil {
		writeStoreError(w, log, "failed to get user", err)
		return
	}

	username := current.Username
	if req.Username != nil {
		username = *req.Username
	}
	roleID := current.RoleID
	if req.RoleID != nil {
		roleID = *req.RoleID
	}

	detail, err := h.UserService.Update(ctx, id, username, roleID)
	if err != nil {
		writeStoreError(w, log, "failed to update user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(detail))
}

func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.UserService.Delete(ctx, r.PathValue("id")); err != nil {
		writeStoreError(w, log, "failed to delete user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
