// Package server реализует gRPC-сервер с протоколом grpc.health.v1.
//
// Статус сервиса обновляется фоновой проверкой хранилища: пока хранилище отвечает,
// сервис SERVING, иначе NOT_SERVING.
package server

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/license-auth/internal/lib/sl"
)

// ServiceName имя сервиса в протоколе health.
const ServiceName = "license-auth"

// Prober проверяет доступность зависимости.
type Prober interface {
	Ping(ctx context.Context) error
}

// HealthServer gRPC-сервер со службой health.
type HealthServer struct {
	srv      *grpc.Server
	health   *health.Server
	probe    Prober
	interval time.Duration
	log      *slog.Logger
}

// NewHealthServer создает HealthServer. До первой проверки сервис считается NOT_SERVING.
func NewHealthServer(probe Prober, interval time.Duration, log *slog.Logger) *HealthServer {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		srv:      srv,
		health:   hs,
		probe:    probe,
		interval: interval,
		log:      log,
	}
}

// Serve принимает соединения на lis до вызова Stop.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Info("grpc health server started", slog.String("address", lis.Addr().String()))
	return s.srv.Serve(lis)
}

// Check выполняет одну проверку и выставляет статус.
func (s *HealthServer) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.probe.Ping(ctx); err != nil {
		s.log.Warn("storage probe failed", sl.Err(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Watch проверяет хранилище каждые interval до отмены ctx.
func (s *HealthServer) Watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Stop переводит все сервисы в NOT_SERVING и дожидается завершения активных вызовов.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
