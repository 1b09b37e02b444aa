// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/models"
)

type switchableHealth struct {
	healthy atomic.Bool
}

func (s *switchableHealth) Check(context.Context) models.HealthResponse {
	if s.healthy.Load() {
		return models.HealthResponse{Status: service.HealthStatusOK, Database: service.DatabaseConnected}
	}
	return models.HealthResponse{Status: service.HealthStatusDegraded, Database: service.DatabaseDisconnected}
}

func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	srv := grpc.NewServer()
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_Refresh(t *testing.T) {
	probe := &switchableHealth{}
	probe.healthy.Store(true)
	h := NewHandler(&service.Services{HealthService: probe}, logger.Nop())
	client := startHealthServer(t, h)

	h.Refresh(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, SyncServiceName))

	probe.healthy.Store(false)
	h.Refresh(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, SyncServiceName))
}

func TestHandler_WatchHealth(t *testing.T) {
	probe := &switchableHealth{}
	h := NewHandler(&service.Services{HealthService: probe}, logger.Nop())
	client := startHealthServer(t, h)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.WatchHealth(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return check(t, client, "") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	probe.healthy.Store(true)
	assert.Eventually(t, func() bool {
		return check(t, client, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchHealth did not stop")
	}
}

func TestHandler_Shutdown(t *testing.T) {
	probe := &switchableHealth{}
	probe.healthy.Store(true)
	h := NewHandler(&service.Services{HealthService: probe}, logger.Nop())
	client := startHealthServer(t, h)

	h.Refresh(context.Background())
	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, SyncServiceName))
}
