// Package health реализует HTTP-обработчик проверки живости сервиса.
// Доступен без проверки учётных данных.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
)

// Handler отвечает на проверку живости.
type Handler struct {
	now func() time.Time
}

// Response - ответ проверки живости.
type Response struct {
	response.Response
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-06-01T12:00:00Z"`
}

// New создает новый Handler. Если now равен nil, используется time.Now.
func New(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{now: now}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Tags Health
// @Produce json
// @Success 200 {object} health.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, Response{
		Response:  response.OK("ok"),
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
