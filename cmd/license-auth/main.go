// Package main License Auth API
//
// @title           License Auth API
// @version         1.0
// @description     Сервис лицензирования: проверка клиента, вход по аккаунту и отпечатку устройства, администрирование пользователей.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Ключ API клиента. Также требуется заголовок User-Agent с ожидаемой подстрокой.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/magabrotheeeer/license-auth/internal/app/licenseauth"
	"github.com/magabrotheeeer/license-auth/internal/config"
	"github.com/magabrotheeeer/license-auth/internal/grpc/client"
	"github.com/magabrotheeeer/license-auth/internal/grpc/server"
	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "query the gRPC health service and exit")
	flag.Parse()

	cfg := config.MustLoad()
	logger := sl.SetupLogger(cfg.Env)

	if *healthcheck {
		os.Exit(probe(cfg, logger))
	}

	logger.Info("starting license-auth", slog.String("env", cfg.Env))
	logger.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := licenseauth.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("license-auth stopped gracefully")
}

// probe опрашивает gRPC health-сервер и возвращает код выхода для HEALTHCHECK контейнера.
func probe(cfg *config.Config, logger *slog.Logger) int {
	if cfg.AddressGRPC == "" {
		logger.Error("grpc_server.addressgrpc is not set")
		return 1
	}

	c, err := client.NewHealthClient(cfg.AddressGRPC)
	if err != nil {
		logger.Error("failed to create health client", sl.Err(err))
		return 1
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ok, err := c.Check(ctx, server.ServiceName)
	if err != nil {
		logger.Error("health check failed", sl.Err(err))
		return 1
	}
	if !ok {
		logger.Error("service is not serving")
		return 1
	}
	return 0
}
