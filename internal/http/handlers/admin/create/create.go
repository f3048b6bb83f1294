// Package create реализует HTTP-обработчик создания пользователя администратором.
//
// Если в запросе указан тип подписки, вместе с пользователем создаётся подписка
// на срок по умолчанию. Повторное создание того же аккаунта отклоняется.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/lib/validate"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// MessageCreated - ответ при успешном создании.
const MessageCreated = "User added successfully"

// Handler управляет HTTP-запросами на создание пользователей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис административных операций
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает создание пользователя.
type Service interface {
	Create(ctx context.Context, req models.NewUser) (string, error)
}

// Data - идентификатор созданного пользователя.
type Data struct {
	UserID string `json:"user_id" example:"5f0c6b1e-3f7a-4c8e-9d1a-2b3c4d5e6f70"`
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
// @Summary Создать пользователя
// @Description Создает пользователя и, если указан subscription_type, подписку на срок по умолчанию.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateUserRequest true "Данные пользователя"
// @Success 200 {object} response.Response{data=create.Data}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос или пользователь уже существует"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/admin/users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateUserRequest
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

	uid, err := h.service.Create(r.Context(), req.ToNewUser())
	if err != nil {
		log.Error("failed to create user", slog.String("account_id", req.AccountID), sl.Err(err))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OKWithData(MessageCreated, Data{UserID: uid}))
}
