// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the sync server's health over the standard gRPC
// health checking protocol, for load balancers and orchestrators that probe
// gRPC rather than HTTP.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
)

// SyncServiceName is the service name reported alongside the overall ("")
// server status.
const SyncServiceName = "onda.sync.v1.Sync"

// DefaultHealthInterval is how often WatchHealth re-checks the database.
const DefaultHealthInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register installs the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// WatchHealth refreshes the served status every interval until ctx is done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	h.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

// Refresh maps the current [service.HealthService] report onto the gRPC
// serving status.
func (h *Handler) Refresh(ctx context.Context) {
	report := h.services.HealthService.Check(ctx)

	status := healthpb.HealthCheckResponse_SERVING
	if report.Status != service.HealthStatusOK {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		h.logger.Warn().
			Str("func", "*Handler.Refresh").
			Str("database", report.Database).
			Msg("reporting NOT_SERVING")
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(SyncServiceName, status)
}

// Shutdown flips every service to NOT_SERVING so clients drain before the
// listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
