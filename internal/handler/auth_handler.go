package handler

import (
	"net/http"
	"strings"

	"smartcity-server/internal/model"
	"smartcity-server/internal/service"
	"smartcity-server/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	tokens, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, tokens)
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload model.SignUpRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.service.SignUp(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, user)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var payload model.RefreshRequest
	if !decodeBody(w, r, &payload) {
		return
	}

	payload.RefreshToken = strings.TrimSpace(payload.RefreshToken)
	if payload.RefreshToken == "" {
		writeError(w, apierror.New("BAD_REQUEST", "refresh_token is required", "refresh_token", http.StatusBadRequest))
		return
	}

	tokens, err := h.service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, tokens)
}
