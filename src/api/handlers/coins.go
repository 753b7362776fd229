package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetCoins(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	coins, err := h.Controller.GetTopCoins(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, coins, http.StatusOK)
}

func (h *Handler) SearchCoins(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	results, err := h.Controller.SearchCoins(ctx, r.URL.Query().Get("query"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, results, http.StatusOK)
}

func (h *Handler) GetMarketChart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	coinID := chi.URLParam(r, "id")

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err == nil {
			days = parsed
		}
	}

	chart, err := h.Controller.GetMarketChart(ctx, coinID, days)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, chart, http.StatusOK)
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	articles, err := h.Controller.GetNews(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, articles, http.StatusOK)
}
