package handler

import (
	"fmt"
	"net/http"
	"strings"

	"go-todo-api/internal/model"
	"go-todo-api/internal/service"
	"go-todo-api/pkg/apierror"
)

type TodoHandler struct {
	service *service.TodoService
}

func NewTodoHandler(service *service.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.TodoSchema
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	if err := payload.Validate(); err != nil {
		writeError(w, apierror.Unprocessable(err))
		return
	}

	todo, err := h.service.Create(r.Context(), owner, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query()
	filter := model.TodoFilter{
		Title:       strings.TrimSpace(query.Get("title")),
		Description: strings.TrimSpace(query.Get("description")),
		State:       model.TodoState(strings.TrimSpace(query.Get("state"))),
		Offset:      parseIntOrDefault(query.Get("offset"), 0),
		Limit:       parseIntOrDefault(query.Get("limit"), 0),
	}
	if filter.State != "" && !filter.State.Valid() {
		writeError(w, apierror.Unprocessable(fmt.Errorf("state: must be a valid value")))
		return
	}

	todos, err := h.service.List(r.Context(), owner, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	if todos == nil {
		todos = []model.Todo{}
	}
	writeJSON(w, http.StatusOK, model.TodoList{Todos: todos})
}

func (h *TodoHandler) Patch(w http.ResponseWriter, r *http.Request) {
	owner, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.TodoUpdate
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	if err := payload.Validate(); err != nil {
		writeError(w, apierror.Unprocessable(err))
		return
	}

	todo, err := h.service.Update(r.Context(), owner, id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), owner, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.Message{Message: "Task has been deleted successfully."})
}
