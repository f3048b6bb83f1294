package middlewarectx

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/license-auth/internal/http/response"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
)

// MessageTooManyRequests - ответ при превышении лимита.
const MessageTooManyRequests = "Too many requests"

// Limiter решает, пропускать ли запрос с ключом key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// unavailableLogInterval - как часто повторяется ошибка недоступного лимитера в логе.
const unavailableLogInterval = 30 * time.Second

// RateLimit ограничивает число запросов с одного IP. Ключ берётся из RemoteAddr,
// заголовки прокси учитываются, только если выше по цепочке стоит middleware.RealIP.
// Если лимитер недоступен, запрос пропускается.
func RateLimit(limiter Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	unavailable := &rate.Sometimes{First: 1, Interval: unavailableLogInterval}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RateLimit"

			ip := clientIP(r)
			ok, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				unavailable.Do(func() {
					log.With(
						slog.String("op", op),
						slog.String("request_id", middleware.GetReqID(r.Context())),
					).Error("rate limiter unavailable", sl.Err(err))
				})
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				log.Warn("too many requests", slog.String("ip", ip))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error(MessageTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
