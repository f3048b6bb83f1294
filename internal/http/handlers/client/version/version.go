// Package version реализует HTTP-обработчик запроса текущей версии приложения.
package version

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Handler отвечает текущей версией.
type Handler struct {
	service Service
}

// Service описывает получение сведений о версии.
type Service interface {
	Version(current string) models.VersionInfo
}

// Response - ответ на запрос версии.
type Response struct {
	response.Response
	Version         string `json:"version" example:"1.0"`
	LatestVersion   string `json:"latest_version" example:"1.0"`
	UpdateAvailable *bool  `json:"update_available,omitempty"`
}

// New создает новый Handler.
func New(service Service) *Handler {
	return &Handler{service: service}
}

// ServeHTTP godoc
// @Summary Текущая версия
// @Description Возвращает текущую версию. Если передан current, сообщает, доступно ли обновление.
// @Tags Client
// @Produce json
// @Security ApiKeyAuth
// @Param current query string false "Версия клиента"
// @Success 200 {object} version.Response
// @Failure 401 {object} response.ErrorResponse
// @Router /api/client/auth/version [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := h.service.Version(r.URL.Query().Get("current"))

	render.JSON(w, r, Response{
		Response:        response.OK(response.MessageSuccess),
		Version:         info.Version,
		LatestVersion:   info.LatestVersion,
		UpdateAvailable: info.UpdateAvailable,
	})
}
