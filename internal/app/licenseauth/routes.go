// Package licenseauth собирает HTTP-маршруты и жизненный цикл сервиса лицензирования.
package licenseauth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/license-auth/docs" // swagger
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/admin/ban"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/admin/create"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/admin/list"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/admin/read"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/admin/remove"
	adminupdate "github.com/magabrotheeeer/license-auth/internal/http/handlers/admin/update"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/client/login"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/client/setup"
	clientupdate "github.com/magabrotheeeer/license-auth/internal/http/handlers/client/update"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/client/version"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/files"
	"github.com/magabrotheeeer/license-auth/internal/http/handlers/health"
	"github.com/magabrotheeeer/license-auth/internal/http/middlewarectx"
)

// SessionService - вход клиента и проверка версии.
type SessionService interface {
	setup.Service
	login.Service
}

// ReleaseService - сведения о версии и обновлении.
type ReleaseService interface {
	version.Service
	clientupdate.Service
}

// AdminService - административные операции над пользователями.
type AdminService interface {
	create.Service
	ban.Service
	list.Service
	read.Service
	adminupdate.Service
	remove.Service
}

// Deps - зависимости маршрутов.
type Deps struct {
	Guard      middlewarectx.Checker
	Limiter    middlewarectx.Limiter
	Metrics    *middlewarectx.Metrics
	Gatherer   prometheus.Gatherer
	Session    SessionService
	Release    ReleaseService
	Admin      AdminService
	UpdatesDir string
	// TrustProxy разрешает брать IP клиента из заголовков прокси.
	TrustProxy bool
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(middleware.RequestID)
	if deps.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", "User-Agent"},
			MaxAge:         300,
		}),
		deps.Metrics.Middleware,
	)

	// Служебные конечные точки без ограничения частоты
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimit(deps.Limiter, logger))

		r.Get("/health", health.New(nil).ServeHTTP)
		r.Handle("/updates/*", files.New("/updates", deps.UpdatesDir))

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Guard(deps.Guard, logger))

			r.Route("/api/client/auth", func(r chi.Router) {
				r.Post("/setup", setup.New(logger, deps.Session).ServeHTTP)
				r.Post("/login", login.New(logger, deps.Session, deps.Metrics).ServeHTTP)
				r.Get("/version", version.New(deps.Release).ServeHTTP)
				r.Get("/update", clientupdate.New(logger, deps.Release).ServeHTTP)
			})

			r.Route("/api/admin", func(r chi.Router) {
				createHandler := create.New(logger, deps.Admin)
				banHandler := ban.New(logger, deps.Admin)

				r.Post("/users", createHandler.ServeHTTP)
				r.Get("/users", list.New(logger, deps.Admin).ServeHTTP)
				r.Post("/users/ban", banHandler.ServeHTTP)
				r.Get("/users/{account_id}", read.New(logger, deps.Admin).ServeHTTP)
				r.Put("/users/{account_id}", adminupdate.New(logger, deps.Admin).ServeHTTP)
				r.Delete("/users/{account_id}", remove.New(logger, deps.Admin).ServeHTTP)

				// Старые адреса
				r.Post("/add-user", createHandler.ServeHTTP)
				r.Post("/ban-user", banHandler.ServeHTTP)
			})
		})
	})
}
