package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-todo-api/internal/model"
)

const todoColumns = `id, title, description, state, user_id, created_at, updated_at`

type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	created, err := scanTodo(r.pool.QueryRow(ctx,
		`INSERT INTO todos (title, description, state, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+todoColumns,
		t.Title, t.Description, t.State, t.UserID))
	if err != nil {
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return created, nil
}

// FindByID only returns todos owned by userID.
func (r *TodoRepository) FindByID(ctx context.Context, id int64, userID int64) (model.Todo, error) {
	t, err := scanTodo(r.pool.QueryRow(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1 AND user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Todo{}, model.ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("find todo: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	where := []string{"user_id = $1"}
	args := []any{filter.UserID}
	argIdx := 2

	if title := strings.TrimSpace(filter.Title); title != "" {
		where = append(where, fmt.Sprintf(`title ILIKE $%d ESCAPE '\'`, argIdx))
		args = append(args, "%"+escapeLike(title)+"%")
		argIdx++
	}
	if description := strings.TrimSpace(filter.Description); description != "" {
		where = append(where, fmt.Sprintf(`description ILIKE $%d ESCAPE '\'`, argIdx))
		args = append(args, "%"+escapeLike(description)+"%")
		argIdx++
	}
	if filter.State != "" {
		where = append(where, fmt.Sprintf("state = $%d", argIdx))
		args = append(args, filter.State)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s FROM todos WHERE %s ORDER BY id OFFSET $%d LIMIT $%d`,
		todoColumns, strings.Join(where, " AND "), argIdx, argIdx+1)
	args = append(args, filter.Offset, filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]model.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) Update(ctx context.Context, t model.Todo) (model.Todo, error) {
	updated, err := scanTodo(r.pool.QueryRow(ctx,
		`UPDATE todos
		 SET title = $3, description = $4, state = $5, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+todoColumns,
		t.ID, t.UserID, t.Title, t.Description, t.State))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Todo{}, model.ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	return updated, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64, userID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanTodo(row pgx.Row) (model.Todo, error) {
	var t model.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.State, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
