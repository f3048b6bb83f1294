package read

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, accountID string) (*models.UserDetails, error) {
	args := m.Called(ctx, accountID)
	if res := args.Get(0); res != nil {
		return res.(*models.UserDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	hw := "HW1"

	tests := []struct {
		name           string
		accountID      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "пользователь найден",
			accountID: "42",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "42").Return(&models.UserDetails{
					User: models.User{AccountID: "42", Username: "Ann", Hwid: &hw, Role: "user", IsBanned: true},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"hwid":"HW1","role":"user","is_banned":true,"subscriptions":[]`,
		},
		{
			name:      "пользователь не найден",
			accountID: "404",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, "404").Return(nil, apperr.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"message":"User not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/users/"+tt.accountID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("account_id", tt.accountID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
