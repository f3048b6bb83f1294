// Package models содержит доменные структуры сервиса лицензирования:
// пользователя, подписку, вычисленные права доступа, события аудита,
// а также типы для приёма данных из JSON-запросов.
package models

import "time"

// DefaultRole - роль, которая назначается пользователю, если она не указана.
const DefaultRole = "user"

// User представляет учётную запись клиента приложения.
type User struct {
	UID       string    // Внутренний идентификатор (UUID), наружу не отдаётся
	AccountID string    // Внешний идентификатор аккаунта (уникальный, неизменяемый)
	Username  string    // Отображаемое имя
	Hwid      *string   // Отпечаток устройства, nil если ещё не привязан
	Role      string    // Произвольная метка роли
	IsBanned  bool      // Признак блокировки
	CreatedAt time.Time // Дата создания
	UpdatedAt time.Time // Дата последнего изменения
}

// UserDetails - пользователь вместе с его неистёкшими подписками.
// Используется в административных выборках.
type UserDetails struct {
	User
	Subscriptions []ActiveSubscription
}

// ActiveSubscription - подписка, у которой не выставлен флаг expired.
type ActiveSubscription struct {
	Type      string
	ExpiresAt *time.Time
}

// UserField перечисляет изменяемые поля пользователя.
type UserField string

const (
	// FieldUsername - отображаемое имя.
	FieldUsername UserField = "username"
	// FieldHwid - отпечаток устройства. Пустое значение сбрасывает привязку.
	FieldHwid UserField = "hwid"
	// FieldRole - роль.
	FieldRole UserField = "role"
)

// FieldUpdate - одно явно переданное изменение поля.
type FieldUpdate struct {
	Field UserField
	Value string
}

// SubscriptionGrant - выдача или продление подписки на Days дней.
type SubscriptionGrant struct {
	Type string
	Days int
}

// UserUpdate - набор переданных изменений. Поля, которых нет в Fields, не меняются.
type UserUpdate struct {
	Fields []FieldUpdate
	Grant  *SubscriptionGrant
}

// Set добавляет изменение поля.
func (u *UserUpdate) Set(field UserField, value string) {
	u.Fields = append(u.Fields, FieldUpdate{Field: field, Value: value})
}

// Empty сообщает, что в запросе нет ни одного изменения.
func (u UserUpdate) Empty() bool {
	return len(u.Fields) == 0 && u.Grant == nil
}

// NewUser - данные для создания пользователя администратором.
type NewUser struct {
	AccountID        string
	Username         string
	Hwid             *string
	Role             string
	SubscriptionType string
}
