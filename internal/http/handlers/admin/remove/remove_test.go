package remove

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Delete(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	tests := []struct {
		name           string
		accountID      string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"успешное удаление", "42", nil, http.StatusOK, `{"message":"User deleted successfully"}`},
		{"пользователь не найден", "404", apperr.ErrNotFound, http.StatusNotFound, `{"message":"User not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Delete", mock.Anything, tt.accountID).Return(tt.err)

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/"+tt.accountID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("account_id", tt.accountID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			New(sl.Discard(), svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
