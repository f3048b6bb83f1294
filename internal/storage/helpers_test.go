package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/license-auth/internal/migrations"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

const postgresPort = nat.Port("5432/tcp")

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его uid
func (f *TestDataFactory) CreateUser(t *testing.T, accountID, username string, hwid *string, createdAt time.Time) string {
	uid := uuid.New().String()
	_, err := f.storage.DB.Exec(`INSERT INTO users (uid, account_id, username, hwid, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'user', $5, $5)`,
		uid, accountID, username, hwid, createdAt)
	require.NoError(t, err)
	return uid
}

// CreateSubscription создает тестовую подписку
func (f *TestDataFactory) CreateSubscription(t *testing.T, userUID, subType string, expired bool, expiresAt *time.Time) {
	_, err := f.storage.DB.Exec(`INSERT INTO subscriptions (user_uid, subscription_type, expired, expires_at)
		VALUES ($1, $2, $3, $4)`,
		userUID, subType, expired, expiresAt)
	require.NoError(t, err)
}

// TestVerification содержит общие функции для проверки результатов тестов
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// CountUsers возвращает количество пользователей с account_id
func (v *TestVerification) CountUsers(t *testing.T, accountID string) int {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM users WHERE account_id = $1", accountID).Scan(&count)
	require.NoError(t, err)
	return count
}

// CountSubscriptions возвращает количество подписок пользователя
func (v *TestVerification) CountSubscriptions(t *testing.T, userUID string) int {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM subscriptions WHERE user_uid = $1", userUID).Scan(&count)
	require.NoError(t, err)
	return count
}

// ReadUser читает пользователя напрямую из БД
func (v *TestVerification) ReadUser(t *testing.T, accountID string) *models.User {
	u, err := v.storage.GetUserByAccountID(context.Background(), accountID)
	require.NoError(t, err)
	return u
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL и применяет миграции
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(postgresPort),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(3 * time.Minute),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, postgresPort)
	require.NoError(t, err, "Failed to get port")

	connStr := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(ctx, connStr)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "Failed to create storage after retries")

	migrationsPath, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath), "Failed to apply migrations")

	cleanup := func() {
		if storage != nil {
			_ = storage.Close()
		}
		_ = postgresContainer.Terminate(ctx)
	}

	return storage, cleanup
}

func ptr[T any](v T) *T {
	return &v
}
