package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/license-auth/internal/models"
)

// ListTimeValidSubscriptions возвращает подписки пользователя, у которых
// expires_at не задан или позже now. Флаг expired здесь не учитывается.
func (s *Storage) ListTimeValidSubscriptions(ctx context.Context, userUID string, now time.Time) ([]models.Subscription, error) {
	const op = "storage.ListTimeValidSubscriptions"

	query := `SELECT id, user_uid, subscription_type, expired, expires_at, created_at
			  FROM subscriptions
			  WHERE user_uid = $1 AND (expires_at IS NULL OR expires_at > $2)
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userUID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Subscription
	for rows.Next() {
		var item models.Subscription
		var expiresAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Type, &item.Expired,
			&expiresAt, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if expiresAt.Valid {
			t := expiresAt.Time
			item.ExpiresAt = &t
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// upsertSubscription вставляет подписку или заменяет существующую с тем же типом:
// флаг expired сбрасывается, срок и дата создания перезаписываются.
func upsertSubscription(ctx context.Context, tx *sql.Tx, userUID string, renewal models.Renewal, now time.Time) error {
	query := `INSERT INTO subscriptions (user_uid, subscription_type, expired, expires_at, created_at)
			  VALUES ($1, $2, FALSE, $3, $4)
			  ON CONFLICT (user_uid, subscription_type) DO UPDATE
			  SET expired = FALSE, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`
	_, err := tx.ExecContext(ctx, query, userUID, renewal.Type, renewal.ExpiresAt, now)
	return err
}
