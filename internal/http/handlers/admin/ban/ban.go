// Package ban реализует HTTP-обработчик блокировки и разблокировки пользователя.
package ban

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

// Handler обрабатывает запросы блокировки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает смену признака блокировки.
type Service interface {
	SetBanned(ctx context.Context, accountID string, banned bool) error
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
// @Summary Заблокировать или разблокировать пользователя
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.BanUserRequest true "Аккаунт и признак блокировки"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/admin/users/ban [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.ban"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.BanUserRequest
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

	banned := *req.IsBanned
	if err := h.service.SetBanned(r.Context(), req.AccountID, banned); err != nil {
		log.Error("failed to set ban flag", slog.String("account_id", req.AccountID), sl.Err(err))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	msg := "User unbanned successfully"
	if banned {
		msg = "User banned successfully"
	}
	log.Info(msg, slog.String("account_id", req.AccountID))
	render.JSON(w, r, response.OK(msg))
}
