package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tracker/src/api/middlewares"
	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func holdingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, utils.BadRequest("Invalid portfolio entry id")
	}
	return id, nil
}

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := middlewares.UserIDFromContext(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	holdings, err := h.Controller.GetPortfolio(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) PostPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := middlewares.UserIDFromContext(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}

	holding, err := h.Controller.AddHolding(ctx, userID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, holding, http.StatusCreated)
}

func (h *Handler) PutPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := middlewares.UserIDFromContext(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	id, err := holdingID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}

	holding, err := h.Controller.UpdateHolding(ctx, userID, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, holding, http.StatusOK)
}

func (h *Handler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := middlewares.UserIDFromContext(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	id, err := holdingID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.DeleteHolding(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, schemas.MessageResponse{Message: "Portfolio entry deleted successfully"}, http.StatusOK)
}

func (h *Handler) PostPortfolioRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := middlewares.UserIDFromContext(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	holdings, err := h.Controller.RefreshPortfolio(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, holdings, http.StatusOK)
}

func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := middlewares.UserIDFromContext(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	summary, err := h.Controller.GetPortfolioSummary(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}
