package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-todo-api/internal/model"
)

const tokenTypeBearer = "bearer"

type AuthService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenCodec
	audit  *AuditService
	now    func() time.Time
}

func NewAuthService(users UserStore, hasher PasswordHasher, tokens TokenCodec, audit *AuditService) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for issuing and validating tokens.
func (s *AuthService) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Login exchanges an email and password for an access token. Unknown emails
// and wrong passwords both yield model.ErrWrongCredentials after one bcrypt
// comparison each.
func (s *AuthService) Login(ctx context.Context, identifier string, password string) (model.AccessToken, error) {
	email := strings.ToLower(strings.TrimSpace(identifier))

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		s.hasher.VerifyDummy(password)
		s.audit.Record(ctx, model.AuditActionLogin, model.AuditStatusFailure, 0, email)
		return model.AccessToken{}, model.ErrWrongCredentials
	}
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.audit.Record(ctx, model.AuditActionLogin, model.AuditStatusFailure, user.ID, email)
		return model.AccessToken{}, model.ErrWrongCredentials
	}

	token, err := s.issue(user)
	if err != nil {
		return model.AccessToken{}, err
	}

	s.audit.Record(ctx, model.AuditActionLogin, model.AuditStatusSuccess, user.ID, user.Email)
	return token, nil
}

// Resolve returns the user a bearer token belongs to. Every decode failure
// and a subject that no longer exists collapse to model.ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (model.User, error) {
	claims, err := s.tokens.Decode(strings.TrimSpace(token), s.now())
	if err != nil {
		slog.Debug("access token rejected", "reason", err)
		return model.User{}, model.ErrUnauthenticated
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if errors.Is(err, model.ErrUserNotFound) {
		slog.Debug("access token subject unknown")
		return model.User{}, model.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, fmt.Errorf("resolve identity: %w", err)
	}

	return user, nil
}

// Refresh mints a token with a new TTL window for the holder of a token that
// is still valid. Expired tokens are rejected like any other invalid token.
func (s *AuthService) Refresh(ctx context.Context, token string) (model.AccessToken, error) {
	user, err := s.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrUnauthenticated) {
			s.audit.Record(ctx, model.AuditActionRefresh, model.AuditStatusFailure, 0, "")
		}
		return model.AccessToken{}, err
	}

	refreshed, err := s.issue(user)
	if err != nil {
		return model.AccessToken{}, err
	}

	s.audit.Record(ctx, model.AuditActionRefresh, model.AuditStatusSuccess, user.ID, user.Email)
	return refreshed, nil
}

func (s *AuthService) issue(user model.User) (model.AccessToken, error) {
	signed, err := s.tokens.Issue(user.Email, s.now())
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("issue access token: %w", err)
	}
	return model.AccessToken{AccessToken: signed, TokenType: tokenTypeBearer}, nil
}
