// Package list реализует HTTP-обработчик получения всех пользователей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Handler обрабатывает запросы списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение списка пользователей.
type Service interface {
	List(ctx context.Context) ([]*models.UserDetails, error)
}

// Data - список пользователей, новые первыми.
type Data struct {
	Users []response.UserView `json:"users"`
	Count int                 `json:"count" example:"1"`
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Description Возвращает всех пользователей (новые первыми) с их неистёкшими подписками.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Response{data=list.Data}
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	views := make([]response.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, response.NewUserView(u))
	}
	render.JSON(w, r, response.OKWithData(response.MessageSuccess, Data{
		Users: views,
		Count: len(views),
	}))
}
