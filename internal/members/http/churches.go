package http

import (
	"net/http"

	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/httpx"
	"github.com/flockhq/flock/pkg/slogx"
)

type ChurchesHandler struct {
	ChurchService *service.ChurchService
}

func (h *ChurchesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.CreateChurchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	church, err := h.ChurchService.Create(ctx, req.Name)
	if err != nil {
		writeStoreError(w, log, "failed to create church", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toChurchInfo(church))
}

func (h *ChurchesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	churches, err := h.ChurchService.List(ctx)
	if err != nil {
		writeStoreError(w, log, "failed to list churches", err)
		return
	}

	out := make([]flocksdk.ChurchInfo, len(churches))
	for i, c := range churches {
		out[i] = toChurchInfo(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ChurchesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	church, err := h.ChurchService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, log, "failed to get church", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toChurchInfo(church))
}

func (h *ChurchesHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.UpdateChurchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	church, err := h.ChurchService.Rename(ctx, r.PathValue("id"), req.Name)
	if err != nil {
		writeStoreError(w, log, "failed to rename church", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toChurchInfo(church))
}

func (h *ChurchesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.ChurchService.Delete(ctx, r.PathValue("id")); err != nil {
		writeStoreError(w, log, "failed to delete church", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
