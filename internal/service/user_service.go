package service

import (
	"context"
	"errors"
	"fmt"

	"go-todo-api/internal/model"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

type UserService struct {
	users  UserStore
	hasher PasswordHasher
	audit  *AuditService
}

func NewUserService(users UserStore, hasher PasswordHasher, audit *AuditService) *UserService {
	return &UserService{users: users, hasher: hasher, audit: audit}
}

func (s *UserService) Create(ctx context.Context, schema model.UserSchema) (model.User, error) {
	schema.Normalize()

	exists, err := s.users.ExistsByEmail(ctx, schema.Email)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(schema.Password)
	if err != nil {
		return model.User{}, err
	}

	created, err := s.users.Create(ctx, model.User{
		Username:     schema.Username,
		Email:        schema.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return model.User{}, err
	}

	s.audit.Record(ctx, model.AuditActionUserCreate, model.AuditStatusSuccess, created.ID, created.Email)
	return created, nil
}

func (s *UserService) List(ctx context.Context, skip int, limit int) ([]model.User, error) {
	skip, limit = page(skip, limit)
	return s.users.List(ctx, skip, limit)
}

func (s *UserService) Get(ctx context.Context, id int64) (model.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update replaces the actor's username, email and password. It fails with
// model.ErrForbidden before touching storage when targetID is not the actor.
func (s *UserService) Update(ctx context.Context, actor model.User, targetID int64, schema model.UserSchema) (model.User, error) {
	if err := Authorize(actor, targetID); err != nil {
		s.audit.Record(ctx, model.AuditActionUserUpdate, model.AuditStatusDenied, actor.ID, fmt.Sprint(targetID))
		return model.User{}, err
	}

	schema.Normalize()

	owner, err := s.users.FindByEmail(ctx, schema.Email)
	switch {
	case err == nil && owner.ID != actor.ID:
		return model.User{}, model.ErrEmailTaken
	case err != nil && !errors.Is(err, model.ErrUserNotFound):
		return model.User{}, err
	}

	hash, err := s.hasher.Hash(schema.Password)
	if err != nil {
		return model.User{}, err
	}

	actor.Username = schema.Username
	actor.Email = schema.Email
	actor.PasswordHash = hash

	updated, err := s.users.Update(ctx, actor)
	if err != nil {
		return model.User{}, err
	}

	s.audit.Record(ctx, model.AuditActionUserUpdate, model.AuditStatusSuccess, updated.ID, updated.Email)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actor model.User, targetID int64) error {
	if err := Authorize(actor, targetID); err != nil {
		s.audit.Record(ctx, model.AuditActionUserDelete, model.AuditStatusDenied, actor.ID, fmt.Sprint(targetID))
		return err
	}

	if err := s.users.Delete(ctx, actor.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, model.AuditActionUserDelete, model.AuditStatusSuccess, actor.ID, actor.Email)
	return nil
}

func page(offset int, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit
}
