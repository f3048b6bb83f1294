// Package remove реализует HTTP-обработчик удаления пользователя вместе с подписками.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
)

// MessageDeleted - ответ при успешном удалении.
const MessageDeleted = "User deleted successfully"

// Handler обрабатывает запросы удаления.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление пользователя.
type Service interface {
	Delete(ctx context.Context, accountID string) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить пользователя
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param account_id path string true "Идентификатор аккаунта"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/admin/users/{account_id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	accountID := chi.URLParam(r, "account_id")

	if err := h.service.Delete(r.Context(), accountID); err != nil {
		log.Error("failed to delete user", slog.String("account_id", accountID), sl.Err(err))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user deleted", slog.String("account_id", accountID))
	render.JSON(w, r, response.OK(MessageDeleted))
}
