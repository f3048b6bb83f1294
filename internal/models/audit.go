package models

import "time"

// Действия, о которых публикуются события аудита.
const (
	ActionUserCreated  = "user.created"
	ActionUserBanned   = "user.banned"
	ActionUserUnbanned = "user.unbanned"
	ActionUserUpdated  = "user.updated"
	ActionUserDeleted  = "user.deleted"
)

// AuditEvent - событие об административном изменении пользователя.
type AuditEvent struct {
	Action    string         `json:"action"`
	AccountID string         `json:"account_id"`
	At        time.Time      `json:"at"`
	Details   map[string]any `json:"details,omitempty"`
}
