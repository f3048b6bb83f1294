// Package login реализует HTTP-обработчик входа клиента по идентификатору аккаунта
// и отпечатку устройства.
//
// В ответе возвращаются профиль пользователя и список его прав доступа.
// Если пользователь не найден, отвечает 401, как ожидает клиентское приложение.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/lib/validate"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Handler обрабатывает запросы входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	recorder Recorder
	validate *validator.Validate
}

// Service описывает вход клиента.
type Service interface {
	Login(ctx context.Context, accountID, hwid string) (*models.LoginResult, error)
}

// Recorder учитывает исходы входа. Может быть nil.
type Recorder interface {
	ObserveLogin(result string)
}

// Data - полезная нагрузка успешного входа.
type Data struct {
	ID            string               `json:"_id" example:"42"`
	Info          Info                 `json:"Info"`
	Subscriptions []models.Entitlement `json:"Subscriptions"`
}

// Info - профиль пользователя.
type Info struct {
	UserName string `json:"UserName" example:"Ann"`
	Hwid     string `json:"Hwid" example:"HW1"`
	Ban      Ban    `json:"Ban"`
	Role     string `json:"Role" example:"user"`
}

// Ban - состояние блокировки.
type Ban struct {
	IsBanned bool `json:"IsBanned"`
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, recorder Recorder) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		recorder: recorder,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход клиента
// @Description Находит пользователя по DiscordId, при необходимости перепривязывает Hwid и возвращает права доступа.
// @Tags Client
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.LoginRequest true "Идентификатор аккаунта и отпечаток устройства"
// @Success 200 {object} response.Response{data=login.Data}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Неверные учётные данные или пользователь не найден"
// @Failure 403 {object} response.ErrorResponse "Пользователь заблокирован"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/client/auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
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

	res, err := h.service.Login(r.Context(), req.AccountID, req.Hwid)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		h.observe("not_found")
		log.Info("login for unknown account", slog.String("account_id", req.AccountID))
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error(response.MessageUserNotFound))
		return
	case errors.Is(err, apperr.ErrForbidden):
		h.observe("banned")
		log.Info("login for banned account", slog.String("account_id", req.AccountID))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error(response.MessageUserBanned))
		return
	case err != nil:
		h.observe("error")
		log.Error("failed to login", sl.Err(err))
		status, resp := response.FromError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	h.observe("success")
	log.Info("client logged in", slog.String("account_id", req.AccountID))
	render.JSON(w, r, response.OKWithData(response.MessageSuccess, Data{
		ID: res.User.AccountID,
		Info: Info{
			UserName: res.User.Username,
			Hwid:     res.Hwid,
			Ban:      Ban{IsBanned: res.User.IsBanned},
			Role:     res.User.Role,
		},
		Subscriptions: res.Entitlements,
	}))
}

func (h *Handler) observe(result string) {
	if h.recorder != nil {
		h.recorder.ObserveLogin(result)
	}
}
