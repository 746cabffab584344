package http

import (
	"net/http"

	"github.com/flockhq/flock/internal/members/domain"
	"github.com/flockhq/flock/internal/members/service"
	"github.com/flockhq/flock/pkg/flocksdk"
	"github.com/flockhq/flock/pkg/httpx"
	"github.com/flockhq/flock/pkg/slogx"
)

type PersonsHandler struct {
	PersonService *service.PersonService
}

func (h *PersonsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.CreatePersonRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Firstname == "" || req.Lastname == "" || req.Email == "" {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return
	}

	person, err := h.PersonService.Create(ctx, domain.Person{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Phone:       req.Phone,
		Gender:      req.Gender,
		CivilStatus: req.CivilStatus,
		Birthday:    req.Birthday,
		Address:     req.Address,
		PlaceOfWork: req.PlaceOfWork,
		AgeGroup:    req.AgeGroup,
		Country:     req.Country,
		District:    req.District,
	})
	if err != nil {
		writeStoreError(w, log, "failed to create person", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPersonInfo(person))
}

func (h *PersonsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	persons, err := h.PersonService.List(ctx)
	if err != nil {
		writeStoreError(w, log, "failed to list persons", err)
		return
	}

	out := make([]flocksdk.PersonInfo, len(persons))
	for i, p := range persons {
		out[i] = toPersonInfo(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *PersonsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	person, err := h.PersonService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, log, "failed to get person", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPersonInfo(person))
}

// HandleUpdate patches a person record. Fields absent from the body keep
// their stored values.
func (h *PersonsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req flocksdk.UpdatePersonRequest
	if !decodeBody(w, r, &req) {
		return
	}

	person, err := h.PersonService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeStoreError(w, log, "failed to get person", err)
		return
	}

	if req.Firstname != nil {
		person.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		person.Lastname = *req.Lastname
	}
	if req.Email != nil {
		person.Email = *req.Email
	}
	if req.Phone != nil {
		person.Phone = req.Phone
	}
	if req.Gender != nil {
		person.Gender = req.Gender
	}
	if req.CivilStatus != nil {
		person.CivilStatus = req.CivilStatus
	}
	if req.Birthday != nil {
		person.Birthday = req.Birthday
	}
	if req.Address != nil {
		person.Address = req.Address
	}
	if req.PlaceOfWork != nil {
		person.PlaceOfWork = req.PlaceOfWork
	}
	if req.AgeGroup != nil {
		person.AgeGroup = req.AgeGroup
	}
	if req.Country != nil {
		person.Country = req.Country
	}
	if req.District != nil {
		person.District = req.District
	}

	updated, err := h.PersonService.Update(ctx, person)
	if err != nil {
		writeStoreError(w, log, "failed to update person", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPersonInfo(updated))
}

func (h *PersonsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.PersonService.Delete(ctx, r.PathValue("id")); err != nil {
		writeStoreError(w, log, "failed to delete person", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
