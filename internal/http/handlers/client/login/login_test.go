package login

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, accountID, hwid string) (*models.LoginResult, error) {
	args := m.Called(ctx, accountID, hwid)
	if res := args.Get(0); res != nil {
		return res.(*models.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveLogin(result string) {
	m.Called(result)
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		wantResult     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			body: `{"DiscordId":"42","Hwid":"HW1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "42", "HW1").Return(&models.LoginResult{
					User: &models.User{AccountID: "42", Username: "Ann", Role: "user"},
					Hwid: "HW1",
					Entitlements: []models.Entitlement{
						{Type: "Pro", Expired: false},
					},
				}, nil)
			},
			wantResult:     "success",
			expectedStatus: http.StatusOK,
			expectedBody: `{"message":"success","data":{"_id":"42",
				"Info":{"UserName":"Ann","Hwid":"HW1","Ban":{"IsBanned":false},"Role":"user"},
				"Subscriptions":[{"Type":"Pro","Expired":false}]}}`,
		},
		{
			name: "пользователь не найден",
			body: `{"DiscordId":"404","Hwid":"HW1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "404", "HW1").Return(nil, apperr.ErrNotFound)
			},
			wantResult:     "not_found",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"User not found"}`,
		},
		{
			name: "пользователь заблокирован",
			body: `{"DiscordId":"42","Hwid":"HW1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "42", "HW1").Return(nil, apperr.ErrForbidden)
			},
			wantResult:     "banned",
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"User is banned"}`,
		},
		{
			name: "ошибка хранилища",
			body: `{"DiscordId":"42","Hwid":"HW1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "42", "HW1").Return(nil, errors.New("db error"))
			},
			wantResult:     "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
		{
			name:           "нечисловой идентификатор",
			body:           `{"DiscordId":"abc","Hwid":"HW1"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field DiscordId can contain only numbers"}`,
		},
		{
			name:           "нет отпечатка",
			body:           `{"DiscordId":"42"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field Hwid is a required field"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			rec := new(MockRecorder)
			if tt.wantResult != "" {
				rec.On("ObserveLogin", tt.wantResult).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/client/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			New(sl.Discard(), svc, rec).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
			rec.AssertExpectations(t)
		})
	}
}

func TestLoginHandler_NilRecorder(t *testing.T) {
	svc := new(MockService)
	svc.On("Login", mock.Anything, "42", "HW1").Return(nil, apperr.ErrNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/client/auth/login", strings.NewReader(`{"DiscordId":"42","Hwid":"HW1"}`))
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() { New(sl.Discard(), svc, nil).ServeHTTP(w, req) })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
