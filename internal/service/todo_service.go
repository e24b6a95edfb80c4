package service

import (
	"context"
	"fmt"
	"strings"

	"go-todo-api/internal/model"
)

type TodoService struct {
	todos TodoStore
	audit *AuditService
}

func NewTodoService(todos TodoStore, audit *AuditService) *TodoService {
	return &TodoService{todos: todos, audit: audit}
}

func (s *TodoService) Create(ctx context.Context, owner model.User, schema model.TodoSchema) (model.Todo, error) {
	return s.todos.Create(ctx, model.Todo{
		Title:       strings.TrimSpace(schema.Title),
		Description: strings.TrimSpace(schema.Description),
		State:       schema.State,
		UserID:      owner.ID,
	})
}

// List returns the owner's todos. The owner on filter is always overwritten.
func (s *TodoService) List(ctx context.Context, owner model.User, filter model.TodoFilter) ([]model.Todo, error) {
	filter.UserID = owner.ID
	filter.Offset, filter.Limit = page(filter.Offset, filter.Limit)
	return s.todos.List(ctx, filter)
}

// Update applies the non-nil fields of patch. Todos of other users are
// reported as model.ErrTodoNotFound.
func (s *TodoService) Update(ctx context.Context, owner model.User, id int64, patch model.TodoUpdate) (model.Todo, error) {
	todo, err := s.todos.FindByID(ctx, id, owner.ID)
	if err != nil {
		return model.Todo{}, err
	}

	if patch.Title != nil {
		todo.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		todo.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.State != nil {
		todo.State = *patch.State
	}

	return s.todos.Update(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, owner model.User, id int64) error {
	if err := s.todos.Delete(ctx, id, owner.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, model.AuditActionTodoDelete, model.AuditStatusSuccess, owner.ID, fmt.Sprint(id))
	return nil
}
