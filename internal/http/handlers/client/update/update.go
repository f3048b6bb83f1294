// Package update реализует HTTP-обработчик запроса сведений об обновлении клиента.
package update

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/models"
)

// Handler отвечает описанием артефакта обновления.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает получение сведений об обновлении.
type Service interface {
	Update() models.UpdateDescriptor
}

// Response - ответ с описанием обновления.
type Response struct {
	response.Response
	DownloadURL string `json:"download_url" example:"http://localhost:3000/updates/UpdateAssistant_v1.0.exe"`
	Version     string `json:"version" example:"1.0"`
	Size        int64  `json:"size" example:"1048576"`
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сведения об обновлении
// @Description Возвращает ссылку на скачивание, версию и размер артефакта (0, если файл отсутствует).
// @Tags Client
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} update.Response
// @Failure 401 {object} response.ErrorResponse
// @Router /api/client/auth/update [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.client.update"

	d := h.service.Update()
	if d.Size == 0 {
		h.log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		).Warn("update artifact is missing", slog.String("version", d.Version))
	}

	render.JSON(w, r, Response{
		Response:    response.OK(response.MessageSuccess),
		DownloadURL: d.DownloadURL,
		Version:     d.Version,
		Size:        d.Size,
	})
}
