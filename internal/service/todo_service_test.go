package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-todo-api/internal/model"
	"go-todo-api/internal/repository"
)

func newTodoFixture() (*TodoService, *repository.MockTodoRepository) {
	todos := &repository.MockTodoRepository{}
	audit := &repository.MockAuditRepository{}
	audit.On("Log", mock.Anything, mock.Anything).Return(nil).Maybe()

	return NewTodoService(todos, NewAuditService(audit)), todos
}

func TestCreateTodoAssignsOwner(t *testing.T) {
	t.Parallel()

	svc, todos := newTodoFixture()
	owner := model.User{ID: 7}

	todos.On("Create", mock.Anything, model.Todo{
		Title:       "Test todo",
		Description: "Test desc",
		State:       model.TodoStateDraft,
		UserID:      7,
	}).Return(model.Todo{ID: 1, Title: "Test todo", Description: "Test desc", State: model.TodoStateDraft, UserID: 7}, nil)

	todo, err := svc.Create(context.Background(), owner, model.TodoSchema{
		Title:       " Test todo ",
		Description: "Test desc",
		State:       model.TodoStateDraft,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), todo.ID)
	todos.AssertExpectations(t)
}

func TestListTodosScopesToOwner(t *testing.T) {
	t.Parallel()

	svc, todos := newTodoFixture()
	todos.On("List", mock.Anything, model.TodoFilter{UserID: 7, State: model.TodoStateDone, Offset: 0, Limit: 100}).
		Return([]model.Todo{{ID: 3, UserID: 7}}, nil)

	// A caller supplied owner is ignored.
	items, err := svc.List(context.Background(), model.User{ID: 7}, model.TodoFilter{UserID: 99, State: model.TodoStateDone})
	require.NoError(t, err)
	require.Len(t, items, 1)
	todos.AssertExpectations(t)
}

func TestUpdateTodoAppliesPatch(t *testing.T) {
	t.Parallel()

	svc, todos := newTodoFixture()
	owner := model.User{ID: 7}
	existing := model.Todo{ID: 3, Title: "old", Description: "keep", State: model.TodoStateTodo, UserID: 7}
	title := "new"
	state := model.TodoStateDone

	todos.On("FindByID", mock.Anything, int64(3), int64(7)).Return(existing, nil)
	todos.On("Update", mock.Anything, model.Todo{ID: 3, Title: "new", Description: "keep", State: model.TodoStateDone, UserID: 7}).
		Return(model.Todo{ID: 3, Title: "new", Description: "keep", State: model.TodoStateDone, UserID: 7}, nil)

	updated, err := svc.Update(context.Background(), owner, 3, model.TodoUpdate{Title: &title, State: &state})
	require.NoError(t, err)
	require.Equal(t, "new", updated.Title)
	require.Equal(t, "keep", updated.Description)
	todos.AssertExpectations(t)
}

func TestUpdateTodoOfAnotherUserIsNotFound(t *testing.T) {
	t.Parallel()

	svc, todos := newTodoFixture()
	todos.On("FindByID", mock.Anything, int64(3), int64(8)).Return(model.Todo{}, model.ErrTodoNotFound)

	_, err := svc.Update(context.Background(), model.User{ID: 8}, 3, model.TodoUpdate{})
	require.ErrorIs(t, err, model.ErrTodoNotFound)
	todos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	svc, todos := newTodoFixture()
	todos.On("Delete", mock.Anything, int64(3), int64(7)).Return(nil)
	todos.On("Delete", mock.Anything, int64(4), int64(7)).Return(model.ErrTodoNotFound)

	require.NoError(t, svc.Delete(context.Background(), model.User{ID: 7}, 3))
	require.ErrorIs(t, svc.Delete(context.Background(), model.User{ID: 7}, 4), model.ErrTodoNotFound)
}
