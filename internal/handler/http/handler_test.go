// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/models"
)

const testSecretKey = "correct-horse-battery"

// stubDatasetService records the owner key of every call and answers with
// the configured values.
type stubDatasetService struct {
	mu        sync.Mutex
	ownerKeys []string
	lastPull  models.PullRequest
	lastPush  models.PushRequest

	pullResp   models.PullResponse
	pushResp   models.PushResponse
	getResp    models.PullResponse
	deleteResp models.DeleteResponse
	err        error
}

func (s *stubDatasetService) record(ownerKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerKeys = append(s.ownerKeys, ownerKey)
}

func (s *stubDatasetService) Pull(_ context.Context, ownerKey string, req models.PullRequest) (models.PullResponse, error) {
	s.record(ownerKey)
	s.lastPull = req
	return s.pullResp, s.err
}

func (s *stubDatasetService) Push(_ context.Context, ownerKey string, req models.PushRequest) (models.PushResponse, error) {
	s.record(ownerKey)
	s.lastPush = req
	return s.pushResp, s.err
}

func (s *stubDatasetService) Get(_ context.Context, ownerKey string) (models.PullResponse, error) {
	s.record(ownerKey)
	return s.getResp, s.err
}

func (s *stubDatasetService) Delete(_ context.Context, ownerKey string) (models.DeleteResponse, error) {
	s.record(ownerKey)
	return s.deleteResp, s.err
}

func (s *stubDatasetService) seenOwnerKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ownerKeys...)
}

type stubHealthService struct {
	status string
}

func (s stubHealthService) Check(context.Context) models.HealthResponse {
	return models.HealthResponse{Status: s.status, Database: "connected", Timestamp: time.Now().UTC()}
}

type stubAppInfoService struct {
	version string
}

func (s stubAppInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		App: config.ServerApp{
			OwnerKeySalt:       "handler-test-salt",
			MinSecretKeyLength: 8,
			Version:            "1.2.3",
		},
		Server: config.ServerTransport{
			RateLimit:    "1000-M",
			MaxBodyBytes: 1 << 20,
		},
	}
}

func newTestHandler(t *testing.T, datasets *stubDatasetService, mutate ...func(*config.ServerConfig)) *Handler {
	t.Helper()
	cfg := testServerConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	services := &service.Services{
		DatasetService: datasets,
		HealthService:  stubHealthService{status: service.HealthStatusOK},
		AppInfoService: stubAppInfoService{version: cfg.App.Version},
	}

	h, err := NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, &stubDatasetService{})

	assert.NotNil(t, h.limiter)
	assert.NotNil(t, h.ownerKeys)
	assert.Nil(t, h.hasher, "integrity checks are off without a hash key")
	assert.Equal(t, 8, h.minSecretKeyLength)
	assert.Equal(t, int64(1<<20), h.maxBodyBytes)
}

func TestNewHandler_WithHashKey(t *testing.T) {
	h := newTestHandler(t, &stubDatasetService{}, func(cfg *config.ServerConfig) {
		cfg.App.HashKey = "shared"
	})

	assert.NotNil(t, h.hasher)
}

func TestNewHandler_InvalidRateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.Server.RateLimit = "sixty per minute"

	_, err := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Error(t, err)
}
