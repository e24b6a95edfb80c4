package service

import (
	"context"
	"time"

	"go-todo-api/internal/model"
)

// UserStore is the persistence the services need for users. Lookups return
// model.ErrUserNotFound when no row matches.
type UserStore interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) (model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset int, limit int) ([]model.User, error)
}

// TodoStore scopes every lookup and mutation to the owning user.
type TodoStore interface {
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	FindByID(ctx context.Context, id int64, userID int64) (model.Todo, error)
	List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error)
	Update(ctx context.Context, t model.Todo) (model.Todo, error)
	Delete(ctx context.Context, id int64, userID int64) error
}

type AuditStore interface {
	Log(ctx context.Context, entry model.AuditEntry) error
	ListByActor(ctx context.Context, actorID int64, limit int) ([]model.AuditEntry, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
	VerifyDummy(plaintext string) bool
}

type TokenCodec interface {
	Issue(subject string, now time.Time) (string, error)
	Decode(token string, now time.Time) (model.TokenClaims, error)
}
