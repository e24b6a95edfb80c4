package handler

import (
	"context"
	"log/slog"
	"net/http"

	"go-todo-api/internal/model"
)

type pinger interface {
	Health(ctx context.Context) error
}

type RootHandler struct {
	db pinger
}

func NewRootHandler(db pinger) *RootHandler {
	return &RootHandler{db: db}
}

func (h *RootHandler) Index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.Message{Message: "Olá Mundo!"})
}

func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, model.ErrorResponse{Detail: "Database unavailable"})
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
