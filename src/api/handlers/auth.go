package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"
)

func (h *Handler) PostSignup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}

	if err := h.Controller.Signup(ctx, req.Username, req.Password); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, schemas.MessageResponse{Message: "User created successfully"}, http.StatusOK)
}

func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}

	tokenResponse, err := h.Controller.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, tokenResponse, http.StatusOK)
}
