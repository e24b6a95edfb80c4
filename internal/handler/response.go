package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"go-todo-api/internal/middleware"
	"go-todo-api/internal/model"
	"go-todo-api/pkg/apierror"
)

// maxBodyBytes caps JSON and form request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "Internal Server Error"

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		detail = apiErr.Message
	} else if errors.Is(err, model.ErrWrongCredentials) {
		status = http.StatusForbidden
		detail = "Wrong credentials"
	} else if errors.Is(err, model.ErrUnauthenticated) {
		middleware.WriteUnauthenticated(w, "Could not validate credentials")
		return
	} else if errors.Is(err, model.ErrNotAuthenticated) {
		middleware.WriteUnauthenticated(w, "Not authenticated")
		return
	} else if errors.Is(err, model.ErrForbidden) {
		status = http.StatusUnauthorized
		detail = "Not enough permissions"
	} else if errors.Is(err, model.ErrEmailTaken) {
		status = http.StatusBadRequest
		detail = "Email already registered"
	} else if errors.Is(err, model.ErrUserNotFound) {
		status = http.StatusNotFound
		detail = "User not found"
	} else if errors.Is(err, model.ErrTodoNotFound) {
		status = http.StatusNotFound
		detail = "Task not found."
	} else if errors.Is(err, model.ErrInvalidInput) {
		status = http.StatusUnprocessableEntity
		detail = "Invalid input"
	} else {
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Detail: detail})
}

// decodeJSON reads a single JSON document into dst. Malformed bodies are
// reported as 422 like any other validation failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierror.Wrap(err, "UNPROCESSABLE_ENTITY", "invalid JSON body", http.StatusUnprocessableEntity)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.Unprocessable(fmt.Errorf("%s: must be an integer", name))
	}
	return id, nil
}

func parseIntOrDefault(raw string, fallback int) int {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

// currentUser returns the identity stored by the auth middleware.
func currentUser(r *http.Request) (model.User, error) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return model.User{}, model.ErrNotAuthenticated
	}
	return user, nil
}
