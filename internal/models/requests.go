package models

// SetupRequest - тело запроса проверки версии клиента.
type SetupRequest struct {
	Version string `json:"Version" validate:"required"`
}

// LoginRequest - тело запроса входа клиента.
type LoginRequest struct {
	AccountID string `json:"DiscordId" validate:"required,numeric"`
	Hwid      string `json:"Hwid" validate:"required"`
}

// CreateUserRequest - тело запроса создания пользователя.
type CreateUserRequest struct {
	AccountID        string  `json:"discord_id" validate:"required,numeric"`
	Username         string  `json:"username" validate:"required"`
	Hwid             *string `json:"hwid,omitempty"`
	Role             string  `json:"role,omitempty"`
	SubscriptionType string  `json:"subscription_type,omitempty"`
}

// ToNewUser преобразует запрос в доменную структуру.
func (r CreateUserRequest) ToNewUser() NewUser {
	return NewUser{
		AccountID:        r.AccountID,
		Username:         r.Username,
		Hwid:             r.Hwid,
		Role:             r.Role,
		SubscriptionType: r.SubscriptionType,
	}
}

// BanUserRequest - тело запроса блокировки или разблокировки.
// IsBanned - указатель, чтобы отличать false от отсутствующего поля.
type BanUserRequest struct {
	AccountID string `json:"discord_id" validate:"required"`
	IsBanned  *bool  `json:"is_banned" validate:"required"`
}

// UpdateUserRequest - тело запроса частичного обновления пользователя.
// Отсутствующие в JSON поля остаются nil и не изменяются.
type UpdateUserRequest struct {
	Username                *string `json:"username,omitempty"`
	Hwid                    *string `json:"hwid,omitempty"`
	Role                    *string `json:"role,omitempty"`
	SubscriptionType        string  `json:"subscription_type,omitempty"`
	SubscriptionExpiresDays int     `json:"subscription_expires_days,omitempty" validate:"omitempty,gt=0"`
}

// ToUpdate собирает явный набор изменений из переданных полей.
// Days подписки остаётся 0, если не передан: значение по умолчанию подставляет сервис.
func (r UpdateUserRequest) ToUpdate() UserUpdate {
	var upd UserUpdate
	if r.Username != nil {
		upd.Set(FieldUsername, *r.Username)
	}
	if r.Hwid != nil {
		upd.Set(FieldHwid, *r.Hwid)
	}
	if r.Role != nil {
		upd.Set(FieldRole, *r.Role)
	}
	if r.SubscriptionType != "" {
		upd.Grant = &SubscriptionGrant{
			Type: r.SubscriptionType,
			Days: r.SubscriptionExpiresDays,
		}
	}
	return upd
}
