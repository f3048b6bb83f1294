// Package session реализует вход клиента по внешнему идентификатору аккаунта
// и отпечатку устройства, а также проверку версии клиента.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// UserRepository определяет методы хранилища, нужные для входа.
type UserRepository interface {
	// GetUserByAccountID возвращает пользователя или apperr.ErrNotFound.
	GetUserByAccountID(ctx context.Context, accountID string) (*models.User, error)
	// UpdateHwid перезаписывает отпечаток и дату изменения.
	UpdateHwid(ctx context.Context, userUID, hwid string, now time.Time) error
}

// Resolver вычисляет права доступа найденного пользователя.
type Resolver interface {
	Resolve(ctx context.Context, user *models.User) ([]models.Entitlement, error)
}

// Service реализует вход и проверку версии.
type Service struct {
	repo       UserRepository
	resolver   Resolver
	appVersion string
	log        *slog.Logger
	now        func() time.Time
}

// NewService создает Service. Если now == nil, используется time.Now.
func NewService(repo UserRepository, resolver Resolver, appVersion string, log *slog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:       repo,
		resolver:   resolver,
		appVersion: appVersion,
		log:        log,
		now:        now,
	}
}

// Login находит пользователя и возвращает его профиль вместе с правами доступа.
//
// Заблокированный пользователь получает apperr.ErrForbidden независимо от отпечатка.
// Если сохранённый отпечаток отличается от переданного (или ещё не сохранён),
// пользователь перепривязывается к новому устройству: вход при этом не отклоняется.
// Совпадающий отпечаток не приводит ни к какой записи в хранилище.
func (s *Service) Login(ctx context.Context, accountID, hwid string) (*models.LoginResult, error) {
	const op = "session.Login"

	user, err := s.repo.GetUserByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if user.IsBanned {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrForbidden)
	}

	if user.Hwid == nil || *user.Hwid != hwid {
		now := s.now()
		if err := s.repo.UpdateHwid(ctx, user.UID, hwid, now); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Info("hwid rebound", slog.String("account_id", accountID))
		user.Hwid = &hwid
		user.UpdatedAt = now
	}

	entitlements, err := s.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.LoginResult{
		User:         user,
		Hwid:         hwid,
		Entitlements: entitlements,
	}, nil
}

// CheckSetup сравнивает версию клиента с версией приложения.
func (s *Service) CheckSetup(version string) error {
	if version != s.appVersion {
		return apperr.ErrVersionMismatch
	}
	return nil
}
