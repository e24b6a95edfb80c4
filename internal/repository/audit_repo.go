package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-todo-api/internal/model"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Log(ctx context.Context, entry model.AuditEntry) error {
	var actorID *int64
	if entry.ActorID != 0 {
		actorID = &entry.ActorID
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_entries (action, status, actor_id, subject, client_ip, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.Action, entry.Status, actorID, entry.Subject, entry.ClientIP, entry.OccurredAt)
	if err != nil {
		return fmt.Errorf("log audit entry: %w", err)
	}
	return nil
}

// ListByActor returns the newest entries recorded for actorID first.
func (r *AuditRepository) ListByActor(ctx context.Context, actorID int64, limit int) ([]model.AuditEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, action, status, actor_id, subject, client_ip, occurred_at
		 FROM audit_entries
		 WHERE actor_id = $1
		 ORDER BY occurred_at DESC, id DESC
		 LIMIT $2`, actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.AuditEntry, 0)
	for rows.Next() {
		var (
			entry model.AuditEntry
			actor *int64
		)
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Status, &actor,
			&entry.Subject, &entry.ClientIP, &entry.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if actor != nil {
			entry.ActorID = *actor
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
