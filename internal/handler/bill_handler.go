package handler

import (
	"net/http"

	"smartcity-server/internal/model"
	"smartcity-server/internal/service"
	"smartcity-server/pkg/apierror"
)

type BillHandler struct {
	service *service.BillService
}

func NewBillHandler(service *service.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// Create issues a bill against a user account; admin-only by routing.
func (h *BillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateBillRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	bill, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, bill)
}

func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(r)
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	bills, err := h.service.List(r.Context(), principal)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, bills)
}

func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	bill, err := h.service.Get(r.Context(), principal, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, bill)
}

func (h *BillHandler) Pay(w http.ResponseWriter, r *http.Request) {
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

	bill, err := h.service.MarkPaid(r.Context(), principal, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, bill)
}
