package http

import (
	"net/http"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/httpx"
	"github.com/flockhq/flock/pkg/slogx"
)

type RolesHandler struct {
	RoleService *service.RoleService
}

func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.CreateRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	role, err := h.RoleService.Create(ctx, domain.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
		Active:      active,
	})
	if err != nil {
		writeStoreError(w, log, "failed to create role", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRoleInfo(role))
}

func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RoleService.List(ctx)
	if err != nil {
		writeStoreError(w, log, "failed to list roles", err)
		return
	}

	out := make([]flocksdk.RoleInfo, len(roles))
	for i, role := range roles {
		out[i] = toRoleInfo(role)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	role, err := h.RoleService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, log, "failed to get role", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleInfo(role))
}

// HandleUpdate patches a role. Fields absent from the body keep their
// stored values; a nil permission list means "leave unchanged", not
// "clear".
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.UpdateRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := h.RoleService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, log, "failed to get role", err)
		return
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = req.Description
	}
	if req.Permissions != nil {
		role.Permissions = req.Permissions
	}
	if req.Active != nil {
		role.Active = *req.Active
	}

	updated, err := h.RoleService.Update(ctx, role)
	if err != nil {
		writeStoreError(w, log, "failed to update role", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleInfo(updated))
}

func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.RoleService.Delete(ctx, r.PathValue("id")); err != nil {
		writeStoreError(w, log, "failed to delete role", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
