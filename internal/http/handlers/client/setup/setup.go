// Package setup реализует HTTP-обработчик проверки версии клиента перед входом.
package setup

import (
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

// Handler обрабатывает запросы проверки версии.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает проверку версии клиента.
type Service interface {
	CheckSetup(version string) error
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
// @Summary Проверка версии клиента
// @Description Сравнивает версию клиента с текущей версией приложения.
// @Tags Client
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.SetupRequest true "Версия клиента"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Version mismatch или некорректный запрос"
// @Failure 401 {object} response.ErrorResponse
// @Router /api/client/auth/setup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.setup"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SetupRequest
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

	if err := h.service.CheckSetup(req.Version); err != nil {
		log.Info("client version rejected", slog.String("version", req.Version))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	render.JSON(w, r, response.OK(response.MessageSuccess))
}
