package response

import (
	"time"

	"github.com/magabrotheeeer/license-auth/internal/models"
)

// UserView - пользователь в ответах административного API.
// Внутренний uid наружу не отдаётся.
type UserView struct {
	AccountID     string             `json:"discord_id" example:"42"`
	Username      string             `json:"username" example:"Ann"`
	Hwid          *string            `json:"hwid"`
	Role          string             `json:"role" example:"user"`
	IsBanned      bool               `json:"is_banned"`
	Subscriptions []SubscriptionView `json:"subscriptions"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SubscriptionView - неистёкшая подписка пользователя.
type SubscriptionView struct {
	Type      string     `json:"type" example:"Pro"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// NewUserView преобразует доменную модель в представление для ответа.
func NewUserView(u *models.UserDetails) UserView {
	subs := make([]SubscriptionView, 0, len(u.Subscriptions))
	for _, s := range u.Subscriptions {
		subs = append(subs, SubscriptionView{Type: s.Type, ExpiresAt: s.ExpiresAt})
	}
	return UserView{
		AccountID:     u.AccountID,
		Username:      u.Username,
		Hwid:          u.Hwid,
		Role:          u.Role,
		IsBanned:      u.IsBanned,
		Subscriptions: subs,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
