package handler

import (
	"net/http"

	"smartcity-server/internal/model"
	"smartcity-server/internal/service"
	"smartcity-server/pkg/apierror"
)

type ComplaintHandler struct {
	service *service.ComplaintService
}

func NewComplaintHandler(service *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(r)
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateComplaintRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	complaint, err := h.service.Create(r.Context(), principal, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, complaint)
}

func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(r)
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	complaints, err := h.service.List(r.Context(), principal)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(r)
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	complaint, err := h.service.Get(r.Context(), principal, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, complaint)
}

func (h *ComplaintHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(r)
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateComplaintRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	complaint, err := h.service.Update(r.Context(), principal, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, complaint)
}

// ChangeStatus is the admin review action; the router gates it on ADMIN.
func (h *ComplaintHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.ChangeComplaintStatusRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	complaint, err := h.service.ChangeStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, complaint)
}
