package model

import "time"

const (
	AuditActionLogin      = "auth.login"
	AuditActionRefresh    = "auth.refresh"
	AuditActionUserCreate = "user.create"
	AuditActionUserUpdate = "user.update"
	AuditActionUserDelete = "user.delete"
	AuditActionTodoDelete = "todo.delete"

	AuditStatusSuccess = "success"
	AuditStatusFailure = "failure"
	AuditStatusDenied  = "denied"
)

// AuditEntry records a security relevant event. ActorID is zero when the
// caller could not be identified, e.g. a failed login.
type AuditEntry struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	Status     string    `json:"status"`
	ActorID    int64     `json:"actor_id,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	ClientIP   string    `json:"client_ip,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type AuditList struct {
	Entries []AuditEntry `json:"entries"`
}
