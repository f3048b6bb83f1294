// Package admin содержит бизнес-логику административных операций над пользователями:
// создание, блокировку, обновление, удаление и просмотр.
// После успешного изменения публикуется событие аудита; ошибка публикации
// только логируется и не влияет на результат операции.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Repository определяет методы хранилища для административных операций.
type Repository interface {
	CreateUser(ctx context.Context, user models.User, sub *models.Subscription) error
	SetBanned(ctx context.Context, accountID string, banned bool, now time.Time) error
	ListUsers(ctx context.Context) ([]*models.UserDetails, error)
	GetUserDetails(ctx context.Context, accountID string) (*models.UserDetails, error)
	UpdateUser(ctx context.Context, accountID string, fields []models.FieldUpdate, renewal *models.Renewal, now time.Time) error
	DeleteUser(ctx context.Context, accountID string) error
}

// Publisher публикует события аудита.
type Publisher interface {
	Publish(ctx context.Context, event models.AuditEvent) error
}

// Service реализует административные операции.
type Service struct {
	repo        Repository
	publisher   Publisher
	log         *slog.Logger
	defaultDays int
	now         func() time.Time
}

// NewService создает Service. defaultDays: срок подписки в днях, если он не указан.
func NewService(repo Repository, publisher Publisher, log *slog.Logger, defaultDays int, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	if defaultDays <= 0 {
		defaultDays = 30
	}
	return &Service{
		repo:        repo,
		publisher:   publisher,
		log:         log,
		defaultDays: defaultDays,
		now:         now,
	}
}

// Create создает пользователя и, если указан тип, подписку на defaultDays дней.
// Возвращает внутренний uid нового пользователя.
func (s *Service) Create(ctx context.Context, req models.NewUser) (string, error) {
	const op = "admin.Create"

	now := s.now()
	role := req.Role
	if role == "" {
		role = models.DefaultRole
	}
	hwid := req.Hwid
	if hwid != nil && *hwid == "" {
		hwid = nil
	}

	user := models.User{
		UID:       uuid.New().String(),
		AccountID: req.AccountID,
		Username:  req.Username,
		Hwid:      hwid,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var sub *models.Subscription
	if req.SubscriptionType != "" {
		expiresAt := now.AddDate(0, 0, s.defaultDays)
		sub = &models.Subscription{
			Type:      req.SubscriptionType,
			ExpiresAt: &expiresAt,
			CreatedAt: now,
		}
	}

	if err := s.repo.CreateUser(ctx, user, sub); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user created", slog.String("account_id", user.AccountID), slog.String("uid", user.UID))
	s.publish(ctx, models.ActionUserCreated, user.AccountID, map[string]any{
		"role":              role,
		"subscription_type": req.SubscriptionType,
	})
	return user.UID, nil
}

// SetBanned блокирует или разблокирует пользователя.
func (s *Service) SetBanned(ctx context.Context, accountID string, banned bool) error {
	const op = "admin.SetBanned"

	if err := s.repo.SetBanned(ctx, accountID, banned, s.now()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	action := models.ActionUserUnbanned
	if banned {
		action = models.ActionUserBanned
	}
	s.publish(ctx, action, accountID, nil)
	return nil
}

// List возвращает всех пользователей, новые первыми.
func (s *Service) List(ctx context.Context) ([]*models.UserDetails, error) {
	const op = "admin.List"

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Get возвращает пользователя с его неистёкшими подписками.
func (s *Service) Get(ctx context.Context, accountID string) (*models.UserDetails, error) {
	const op = "admin.Get"

	user, err := s.repo.GetUserDetails(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// Update применяет переданные изменения. Пустой набор изменений: apperr.ErrNoFields.
// Если передан тип подписки, она выдаётся или продлевается на Days дней (по умолчанию defaultDays).
func (s *Service) Update(ctx context.Context, accountID string, upd models.UserUpdate) error {
	const op = "admin.Update"

	if upd.Empty() {
		return fmt.Errorf("%s: %w", op, apperr.ErrNoFields)
	}

	now := s.now()
	var renewal *models.Renewal
	if upd.Grant != nil {
		days := upd.Grant.Days
		if days <= 0 {
			days = s.defaultDays
		}
		renewal = &models.Renewal{
			Type:      upd.Grant.Type,
			ExpiresAt: now.AddDate(0, 0, days),
		}
	}

	if err := s.repo.UpdateUser(ctx, accountID, upd.Fields, renewal, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	details := make(map[string]any, len(upd.Fields)+1)
	for _, f := range upd.Fields {
		details[string(f.Field)] = f.Value
	}
	if renewal != nil {
		details["subscription_type"] = renewal.Type
		details["expires_at"] = renewal.ExpiresAt
	}
	s.publish(ctx, models.ActionUserUpdated, accountID, details)
	return nil
}

// Delete удаляет пользователя вместе с подписками.
func (s *Service) Delete(ctx context.Context, accountID string) error {
	const op = "admin.Delete"

	if err := s.repo.DeleteUser(ctx, accountID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user deleted", slog.String("account_id", accountID))
	s.publish(ctx, models.ActionUserDeleted, accountID, nil)
	return nil
}

func (s *Service) publish(ctx context.Context, action, accountID string, details map[string]any) {
	event := models.AuditEvent{
		Action:    action,
		AccountID: accountID,
		At:        s.now(),
		Details:   details,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish audit event", slog.String("action", action), sl.Err(err))
	}
}
