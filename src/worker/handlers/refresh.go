package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) PostRefreshAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	refreshed, err := h.Controller.RefreshAll(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]int{"refreshed": refreshed}, http.StatusOK)
}

func (h *Handler) PostRefreshUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid user id"))
		return
	}

	refreshed, err := h.Controller.RefreshUser(ctx, userID, nil)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]int{"refreshed": refreshed}, http.StatusOK)
}
