package models

import "time"

// Subscription - строка таблицы subscriptions.
// ExpiresAt == nil означает отсутствие ограничения по времени.
type Subscription struct {
	ID        int64
	UserUID   string
	Type      string
	Expired   bool
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Active сообщает, действует ли подписка в момент now.
func (s Subscription) Active(now time.Time) bool {
	if s.Expired {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

// Renewal - вставка или замена подписки пользователя по паре (пользователь, тип).
type Renewal struct {
	Type      string
	ExpiresAt time.Time
}

// Entitlement - право доступа в том виде, в котором его получает клиент.
type Entitlement struct {
	Type      string     `json:"Type"`
	Expired   bool       `json:"Expired"`
	ExpiresAt *time.Time `json:"ExpiresAt,omitempty"`
}

// LoginResult содержит результат входа: пользователя, привязанный отпечаток и права доступа.
type LoginResult struct {
	User         *User
	Hwid         string
	Entitlements []Entitlement
}
