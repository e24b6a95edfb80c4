package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-todo-api/internal/model"
	"go-todo-api/internal/repository"
	"go-todo-api/internal/security"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type authFixture struct {
	service *AuthService
	users   *repository.MockUserRepository
	audit   *repository.MockAuditRepository
	hasher  *security.PasswordHasher
	codec   *security.TokenCodec
	clock   *fakeClock
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hasher, err := security.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	codec, err := security.NewTokenCodec("test-secret", "HS256", security.DefaultAccessTTL)
	require.NoError(t, err)

	users := &repository.MockUserRepository{}
	audit := &repository.MockAuditRepository{}
	audit.On("Log", mock.Anything, mock.Anything).Return(nil).Maybe()

	clock := &fakeClock{now: time.Date(2023, time.July, 14, 12, 0, 0, 0, time.UTC)}
	svc := NewAuthService(users, hasher, codec, NewAuditService(audit))
	svc.SetClock(clock.Now)

	return &authFixture{service: svc, users: users, audit: audit, hasher: hasher, codec: codec, clock: clock}
}

func (f *authFixture) storedUser(t *testing.T, id int64, email string, password string) model.User {
	t.Helper()

	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	return model.User{ID: id, Username: "test", Email: email, PasswordHash: hash}
}

func auditAction(action string, status string) interface{} {
	return mock.MatchedBy(func(entry model.AuditEntry) bool {
		return entry.Action == action && entry.Status == status
	})
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	user := f.storedUser(t, 1, "test1@test.com", "testtest")
	f.users.On("FindByEmail", mock.Anything, "test1@test.com").Return(user, nil)

	token, err := f.service.Login(context.Background(), " Test1@Test.com ", "testtest")
	require.NoError(t, err)
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	claims, err := f.codec.Decode(token.AccessToken, f.clock.now)
	require.NoError(t, err)
	require.Equal(t, "test1@test.com", claims.Subject)
	require.True(t, claims.ExpiresAt.Equal(f.clock.now.Add(30*time.Minute)))

	f.audit.AssertCalled(t, "Log", mock.Anything, auditAction(model.AuditActionLogin, model.AuditStatusSuccess))
}

func TestLoginUnknownEmailIsWrongCredentials(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.users.On("FindByEmail", mock.Anything, "no_user@no_domain.com").Return(model.User{}, model.ErrUserNotFound)

	_, err := f.service.Login(context.Background(), "no_user@no_domain.com", "testtest")
	require.ErrorIs(t, err, model.ErrWrongCredentials)

	f.audit.AssertCalled(t, "Log", mock.Anything, auditAction(model.AuditActionLogin, model.AuditStatusFailure))
}

func TestLoginWrongPasswordIsWrongCredentials(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	user := f.storedUser(t, 1, "test1@test.com", "testtest")
	f.users.On("FindByEmail", mock.Anything, "test1@test.com").Return(user, nil)

	_, err := f.service.Login(context.Background(), "test1@test.com", "wrongpass")
	require.ErrorIs(t, err, model.ErrWrongCredentials)
}

func TestLoginPropagatesStorageFailure(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.users.On("FindByEmail", mock.Anything, "test1@test.com").Return(model.User{}, errors.New("connection refused"))

	_, err := f.service.Login(context.Background(), "test1@test.com", "testtest")
	require.Error(t, err)
	require.NotErrorIs(t, err, model.ErrWrongCredentials)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	user := f.storedUser(t, 1, "test1@test.com", "testtest")
	f.users.On("FindByEmail", mock.Anything, "test1@test.com").Return(user, nil)

	token, err := f.service.Login(context.Background(), "test1@test.com", "testtest")
	require.NoError(t, err)

	f.clock.now = time.Date(2023, time.July, 14, 12, 31, 0, 0, time.UTC)

	_, err = f.service.Refresh(context.Background(), token.AccessToken)
	require.ErrorIs(t, err, model.ErrUnauthenticated)

	f.audit.AssertCalled(t, "Log", mock.Anything, auditAction(model.AuditActionRefresh, model.AuditStatusFailure))
}

func TestRefreshStartsNewWindow(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	user := f.storedUser(t, 1, "test1@test.com", "testtest")
	f.users.On("FindByEmail", mock.Anything, "test1@test.com").Return(user, nil)

	token, err := f.service.Login(context.Background(), "test1@test.com", "testtest")
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(20 * time.Minute)

	refreshed, err := f.service.Refresh(context.Background(), token.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "bearer", refreshed.TokenType)

	claims, err := f.codec.Decode(refreshed.AccessToken, f.clock.now)
	require.NoError(t, err)
	require.Equal(t, "test1@test.com", claims.Subject)
	require.True(t, claims.ExpiresAt.Equal(f.clock.now.Add(30*time.Minute)))

	// The refreshed token outlives the original one.
	f.clock.now = f.clock.now.Add(15 * time.Minute)
	_, err = f.service.Resolve(context.Background(), token.AccessToken)
	require.ErrorIs(t, err, model.ErrUnauthenticated)
	resolved, err := f.service.Resolve(context.Background(), refreshed.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestResolveFailsClosed(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.users.On("FindByEmail", mock.Anything, "gone@test.com").Return(model.User{}, model.ErrUserNotFound)

	orphan, err := f.codec.Issue("gone@test.com", f.clock.now)
	require.NoError(t, err)

	foreignCodec, err := security.NewTokenCodec("other-secret", "HS256", time.Hour)
	require.NoError(t, err)
	foreign, err := foreignCodec.Issue("test1@test.com", f.clock.now)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"unknown subject": orphan,
		"bad signature":   foreign,
		"malformed":       "definitely-not-a-token",
		"empty":           "",
	} {
		_, err := f.service.Resolve(context.Background(), token)
		require.ErrorIs(t, err, model.ErrUnauthenticated, name)
	}

	f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, "test1@test.com")
}

func TestResolvePropagatesStorageFailure(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.users.On("FindByEmail", mock.Anything, "test1@test.com").Return(model.User{}, errors.New("timeout"))

	token, err := f.codec.Issue("test1@test.com", f.clock.now)
	require.NoError(t, err)

	_, err = f.service.Resolve(context.Background(), token)
	require.Error(t, err)
	require.NotErrorIs(t, err, model.ErrUnauthenticated)
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	actor := model.User{ID: 1, Email: "a@test.com"}

	require.NoError(t, Authorize(actor, 1))
	require.ErrorIs(t, Authorize(actor, 2), model.ErrForbidden)
	require.ErrorIs(t, Authorize(model.User{}, 0), model.ErrForbidden)
}
