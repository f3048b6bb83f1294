package create

import (
	"context"
	"errors"
	"fmt"
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

func (m *MockService) Create(ctx context.Context, req models.NewUser) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	hw := "HW1"

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание с подпиской",
			body: `{"discord_id":"42","username":"Ann","hwid":"HW1","subscription_type":"Pro"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.NewUser{
					AccountID: "42", Username: "Ann", Hwid: &hw, SubscriptionType: "Pro",
				}).Return("uid-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"User added successfully","data":{"user_id":"uid-1"}}`,
		},
		{
			name: "аккаунт уже существует",
			body: `{"discord_id":"42","username":"Ann"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return("", fmt.Errorf("admin.Create: %w", apperr.ErrConflict))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"User already exists"}`,
		},
		{
			name:           "нет имени",
			body:           `{"discord_id":"42"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field username is a required field"}`,
		},
		{
			name:           "нечисловой идентификатор",
			body:           `{"discord_id":"ann","username":"Ann"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"field discord_id can contain only numbers"}`,
		},
		{
			name: "ошибка хранилища",
			body: `{"discord_id":"42","username":"Ann"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
