package licenseauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/license-auth/internal/cache"
	"github.com/magabrotheeeer/license-auth/internal/config"
	"github.com/magabrotheeeer/license-auth/internal/events"
	"github.com/magabrotheeeer/license-auth/internal/grpc/server"
	"github.com/magabrotheeeer/license-auth/internal/http/middlewarectx"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
	"github.com/magabrotheeeer/license-auth/internal/migrations"
	"github.com/magabrotheeeer/license-auth/internal/ratelimit"
	"github.com/magabrotheeeer/license-auth/internal/services/access"
	"github.com/magabrotheeeer/license-auth/internal/services/admin"
	"github.com/magabrotheeeer/license-auth/internal/services/entitlement"
	"github.com/magabrotheeeer/license-auth/internal/services/release"
	"github.com/magabrotheeeer/license-auth/internal/services/session"
	"github.com/magabrotheeeer/license-auth/internal/storage"
)

// App владеет HTTP-сервером, gRPC health-сервером и всеми внешними подключениями.
type App struct {
	cfg       *config.Config
	server    *http.Server
	health    *server.HealthServer
	logger    *slog.Logger
	db        *storage.Storage
	cache     *cache.Cache
	memory    *ratelimit.Memory
	publisher io.Closer
}

// New подключается к хранилищу, применяет миграции и собирает зависимости.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "licenseauth.New"

	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{cfg: cfg, logger: logger, db: db}

	var limiter middlewarectx.Limiter
	if cfg.RedisAddress != "" {
		c, err := cache.InitServer(ctx, cfg.RateLimit)
		if err != nil {
			_ = a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.cache = c
		limiter = ratelimit.NewWindow(c, cfg.Requests, cfg.Window)
		logger.Info("rate limit counters in redis", slog.String("address", cfg.RedisAddress))
	} else {
		a.memory = ratelimit.NewMemory(cfg.Requests, cfg.Window)
		limiter = a.memory
	}

	var publisher admin.Publisher = events.Noop{Log: logger}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQP(cfg.AMQPURL, cfg.Exchange, cfg.Retries, cfg.Delay, logger)
		if err != nil {
			_ = a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.publisher = p
		publisher = p
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	resolver := entitlement.NewResolver(db, cfg.DefaultType, nil)
	deps := Deps{
		Guard:    access.New(cfg.APIKey, cfg.UserAgent),
		Limiter:  limiter,
		Metrics:  middlewarectx.NewMetrics(registry),
		Gatherer: registry,
		Session:  session.NewService(db, resolver, cfg.App.Version, logger, nil),
		Release: release.NewService(release.Options{
			Version:          cfg.App.Version,
			Dir:              cfg.UpdatesDir,
			DownloadURL:      cfg.DownloadURL,
			PublicBaseURL:    cfg.PublicBaseURL,
			ArtifactTemplate: cfg.ArtifactTemplate,
		}),
		Admin:      admin.NewService(db, publisher, logger, cfg.DefaultDays, nil),
		UpdatesDir: cfg.UpdatesDir,
		TrustProxy: cfg.TrustProxy,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, deps)

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	if cfg.AddressGRPC != "" {
		a.health = server.NewHealthServer(db, cfg.ProbeInterval, logger)
	}
	return a, nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает сервер и закрывает подключения:
// сначала HTTP, затем gRPC, брокер, Redis и в конце хранилище.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if a.health != nil {
		lis, err := net.Listen("tcp", a.cfg.AddressGRPC)
		if err != nil {
			return errors.Join(err, a.shutdown())
		}
		go func() {
			if err := a.health.Serve(lis); err != nil {
				errCh <- err
			}
		}()
		go a.health.Watch(ctx)
	}
	if a.memory != nil {
		go a.memory.Run(ctx)
	}

	select {
	case err := <-errCh:
		a.logger.Error("server failed", sl.Err(err))
		return errors.Join(err, a.shutdown())
	case <-ctx.Done():
		a.logger.Info("shutting down gracefully")
		return a.shutdown()
	}
}

func (a *App) shutdown() error {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(timeoutCtx)
	if a.health != nil {
		a.health.Stop()
	}
	return errors.Join(err, a.close())
}

func (a *App) close() error {
	var errs []error
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.cache != nil {
		errs = append(errs, a.cache.Close())
	}
	errs = append(errs, a.db.Close())
	return errors.Join(errs...)
}
