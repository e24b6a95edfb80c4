package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-todo-api/internal/model"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type clientIPKey struct{}

// WithClientIP attaches the caller address recorded on audit entries.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func clientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// AuditService records security events. Recording is best effort: a failed
// write is logged and never surfaces to the caller.
type AuditService struct {
	store AuditStore
	now   func() time.Time
}

func NewAuditService(store AuditStore) *AuditService {
	return &AuditService{store: store, now: time.Now}
}

func (s *AuditService) Record(ctx context.Context, action string, status string, actorID int64, subject string) {
	if s == nil || s.store == nil {
		return
	}

	entry := model.AuditEntry{
		Action:     action,
		Status:     status,
		ActorID:    actorID,
		Subject:    subject,
		ClientIP:   clientIPFromContext(ctx),
		OccurredAt: s.now().UTC(),
	}

	if err := s.store.Log(ctx, entry); err != nil {
		slog.Warn("audit entry not recorded", "action", action, "status", status, "error", err)
	}
}

func (s *AuditService) ListForActor(ctx context.Context, actor model.User, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	entries, err := s.store.ListByActor(ctx, actor.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
