// Package entitlement вычисляет список прав доступа пользователя для клиента.
package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Repository определяет выборку подписок, действующих по времени.
type Repository interface {
	ListTimeValidSubscriptions(ctx context.Context, userUID string, now time.Time) ([]models.Subscription, error)
}

// Resolver вычисляет права доступа.
// defaultType: тип служебной записи, которая добавляется, когда активных прав нет.
type Resolver struct {
	repo        Repository
	defaultType string
	now         func() time.Time
}

// NewResolver создает Resolver. Если now == nil, используется time.Now.
func NewResolver(repo Repository, defaultType string, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		repo:        repo,
		defaultType: defaultType,
		now:         now,
	}
}

// Resolve возвращает все действующие по времени подписки пользователя.
// Если ни одна из них не активна (expired == false), в конец списка добавляется
// запись {defaultType, Expired: true}, по которой клиент завершает работу.
// Результат никогда не бывает пустым.
func (r *Resolver) Resolve(ctx context.Context, user *models.User) ([]models.Entitlement, error) {
	const op = "entitlement.Resolve"

	now := r.now()
	subs, err := r.repo.ListTimeValidSubscriptions(ctx, user.UID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]models.Entitlement, 0, len(subs)+1)
	hasActive := false
	for _, s := range subs {
		result = append(result, models.Entitlement{
			Type:      s.Type,
			Expired:   s.Expired,
			ExpiresAt: s.ExpiresAt,
		})
		if s.Active(now) {
			hasActive = true
		}
	}

	if !hasActive {
		result = append(result, models.Entitlement{
			Type:    r.defaultType,
			Expired: true,
		})
	}
	return result, nil
}
