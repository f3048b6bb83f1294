package list

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]*models.UserDetails, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.UserDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список пользователей",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]*models.UserDetails{
					{
						User:          models.User{AccountID: "42", Username: "Ann", Role: "user", CreatedAt: ts, UpdatedAt: ts},
						Subscriptions: []models.ActiveSubscription{{Type: "Pro", ExpiresAt: &ts}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"message":"success","data":{"count":1,"users":[{
				"discord_id":"42","username":"Ann","hwid":null,"role":"user","is_banned":false,
				"subscriptions":[{"type":"Pro","expires_at":"2025-06-01T12:00:00Z"}],
				"created_at":"2025-06-01T12:00:00Z","updated_at":"2025-06-01T12:00:00Z"}]}}`,
		},
		{
			name: "пустой список",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]*models.UserDetails{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"success","data":{"count":0,"users":[]}}`,
		},
		{
			name: "ошибка хранилища",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			New(sl.Discard(), svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
