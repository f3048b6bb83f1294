package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

var userColumns = map[models.UserField]string{
	models.FieldUsername: "username",
	models.FieldHwid:     "hwid",
	models.FieldRole:     "role",
}

// CreateUser сохраняет нового пользователя и, если передана, его первую подписку.
// Обе вставки выполняются в одной транзакции; при совпадении account_id
// возвращается apperr.ErrConflict и ничего не изменяется.
func (s *Storage) CreateUser(ctx context.Context, user models.User, sub *models.Subscription) error {
	const op = "storage.CreateUser"

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `INSERT INTO users (uid, account_id, username, hwid, role, is_banned, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		if _, err := tx.ExecContext(ctx, query,
			user.UID, user.AccountID, user.Username, user.Hwid, user.Role, user.IsBanned,
			user.CreatedAt, user.UpdatedAt); err != nil {
			return err
		}
		if sub == nil {
			return nil
		}
		query = `INSERT INTO subscriptions (user_uid, subscription_type, expired, expires_at, created_at)
				 VALUES ($1, $2, $3, $4, $5)`
		_, err := tx.ExecContext(ctx, query,
			user.UID, sub.Type, sub.Expired, sub.ExpiresAt, sub.CreatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	return nil
}

// GetUserByAccountID возвращает пользователя по внешнему идентификатору.
func (s *Storage) GetUserByAccountID(ctx context.Context, accountID string) (*models.User, error) {
	const op = "storage.GetUserByAccountID"

	query := `SELECT uid, account_id, username, hwid, role, is_banned, created_at, updated_at
			  FROM users
			  WHERE account_id = $1`
	u := &models.User{}
	var hwid sql.NullString
	if err := s.DB.QueryRowContext(ctx, query, accountID).Scan(&u.UID, &u.AccountID, &u.Username,
		&hwid, &u.Role, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	if hwid.Valid {
		u.Hwid = &hwid.String
	}
	return u, nil
}

// UpdateHwid перепривязывает пользователя к новому отпечатку устройства.
func (s *Storage) UpdateHwid(ctx context.Context, userUID, hwid string, now time.Time) error {
	const op = "storage.UpdateHwid"

	query := `UPDATE users SET hwid = $1, updated_at = $2 WHERE uid = $3`
	res, err := s.DB.ExecContext(ctx, query, hwid, now, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, res)
}

// SetBanned выставляет признак блокировки пользователя.
func (s *Storage) SetBanned(ctx context.Context, accountID string, banned bool, now time.Time) error {
	const op = "storage.SetBanned"

	query := `UPDATE users SET is_banned = $1, updated_at = $2 WHERE account_id = $3`
	res, err := s.DB.ExecContext(ctx, query, banned, now, accountID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, res)
}

// UpdateUser применяет только переданные поля и, если передано продление,
// вставляет или заменяет подписку пользователя с указанным типом.
func (s *Storage) UpdateUser(ctx context.Context, accountID string, fields []models.FieldUpdate,
	renewal *models.Renewal, now time.Time) error {
	const op = "storage.UpdateUser"

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, f := range fields {
		column, ok := userColumns[f.Field]
		if !ok {
			return fmt.Errorf("%s: unknown field %q: %w", op, f.Field, apperr.ErrValidation)
		}
		args = append(args, fieldValue(f))
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, now)
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, accountID)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE account_id = $%d RETURNING uid`,
		strings.Join(sets, ", "), len(args))

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var userUID string
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&userUID); err != nil {
			return err
		}
		if renewal == nil {
			return nil
		}
		return upsertSubscription(ctx, tx, userUID, *renewal, now)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	return nil
}

// DeleteUser удаляет подписки пользователя, затем самого пользователя.
// Порядок сохраняет ссылочную целостность: подписка без пользователя не появляется.
func (s *Storage) DeleteUser(ctx context.Context, accountID string) error {
	const op = "storage.DeleteUser"

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM subscriptions WHERE user_uid IN (SELECT uid FROM users WHERE account_id = $1)`,
			accountID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE account_id = $1`, accountID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	return nil
}

// ListUsers возвращает всех пользователей, начиная с последних созданных,
// вместе с подписками без флага expired.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.UserDetails, error) {
	const op = "storage.ListUsers"

	query := `SELECT u.uid, u.account_id, u.username, u.hwid, u.role, u.is_banned,
				  u.created_at, u.updated_at, s.subscription_type, s.expires_at
			  FROM users u
			  LEFT JOIN subscriptions s ON u.uid = s.user_uid AND s.expired = FALSE
			  ORDER BY u.created_at DESC, u.uid, s.id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanDetails(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetUserDetails возвращает одного пользователя с подписками без флага expired.
func (s *Storage) GetUserDetails(ctx context.Context, accountID string) (*models.UserDetails, error) {
	const op = "storage.GetUserDetails"

	query := `SELECT u.uid, u.account_id, u.username, u.hwid, u.role, u.is_banned,
				  u.created_at, u.updated_at, s.subscription_type, s.expires_at
			  FROM users u
			  LEFT JOIN subscriptions s ON u.uid = s.user_uid AND s.expired = FALSE
			  WHERE u.account_id = $1
			  ORDER BY s.id`
	rows, err := s.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanDetails(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return result[0], nil
}

// scanDetails сворачивает строки LEFT JOIN в пользователей с подписками,
// сохраняя порядок пользователей из запроса.
func scanDetails(rows *sql.Rows) ([]*models.UserDetails, error) {
	result := make([]*models.UserDetails, 0)
	byUID := make(map[string]*models.UserDetails)

	for rows.Next() {
		var (
			u         models.User
			hwid      sql.NullString
			subType   sql.NullString
			expiresAt sql.NullTime
		)
		if err := rows.Scan(&u.UID, &u.AccountID, &u.Username, &hwid, &u.Role, &u.IsBanned,
			&u.CreatedAt, &u.UpdatedAt, &subType, &expiresAt); err != nil {
			return nil, err
		}

		details, ok := byUID[u.UID]
		if !ok {
			if hwid.Valid {
				u.Hwid = &hwid.String
			}
			details = &models.UserDetails{User: u, Subscriptions: []models.ActiveSubscription{}}
			byUID[u.UID] = details
			result = append(result, details)
		}
		if subType.Valid {
			sub := models.ActiveSubscription{Type: subType.String}
			if expiresAt.Valid {
				t := expiresAt.Time
				sub.ExpiresAt = &t
			}
			details.Subscriptions = append(details.Subscriptions, sub)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func fieldValue(f models.FieldUpdate) any {
	if f.Field == models.FieldHwid && f.Value == "" {
		return nil
	}
	return f.Value
}

func affected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return nil
}
