// Package middlewarectx содержит HTTP middleware сервиса: проверку учётных данных клиента,
// ограничение частоты запросов по IP и сбор метрик.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
)

// Checker проверяет ключ API и user-agent клиента.
type Checker interface {
	Check(apiKey, userAgent string) error
}

// Guard возвращает middleware, который пропускает запрос дальше, только если
// заголовок Authorization совпадает с ключом API, а User-Agent содержит ожидаемую подстроку.
// Обе причины отказа дают один и тот же ответ 401.
func Guard(checker Checker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Guard"

			if err := checker.Check(r.Header.Get("Authorization"), r.UserAgent()); err != nil {
				log.With(
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				).Warn("client rejected", slog.String("remote_addr", r.RemoteAddr), sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(response.MessageInvalidCredentials))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
