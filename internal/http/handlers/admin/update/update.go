// Package update реализует HTTP-обработчик частичного обновления пользователя.
//
// Изменяются только переданные поля. Если передан subscription_type, подписка
// этого типа выдаётся или продлевается на subscription_expires_days дней.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/lib/validate"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// MessageUpdated - ответ при успешном обновлении.
const MessageUpdated = "User updated successfully"

// Handler обрабатывает запросы обновления.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает обновление пользователя.
type Service interface {
	Update(ctx context.Context, accountID string, upd models.UserUpdate) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить пользователя
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param account_id path string true "Идентификатор аккаунта"
// @Param request body models.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или нет полей для обновления"
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/admin/users/{account_id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	accountID := chi.URLParam(r, "account_id")

	var req models.UpdateUserRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(response.MessageInvalidRequest))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		errors.As(err, &verrs)
		log.Warn("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(verrs))
		return
	}

	if err := h.service.Update(r.Context(), accountID, req.ToUpdate()); err != nil {
		log.Error("failed to update user", slog.String("account_id", accountID), sl.Err(err))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user updated", slog.String("account_id", accountID))
	render.JSON(w, r, response.OK(MessageUpdated))
}
