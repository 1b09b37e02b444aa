// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/config"
)

func newBodyLimitedRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestHandler(t, &stubDatasetService{}, func(cfg *config.ServerConfig) {
		cfg.Server.MaxBodyBytes = 64
	}).Init()
}

func TestWithBodyLimit_DeclaredLength(t *testing.T) {
	router := newBodyLimitedRouter(t)
	body := `{"clientVersion":1,"data":{"columns":[],"weeks":["` + strings.Repeat("x", 100) + `"]}}`

	req := httptest.NewRequest(http.MethodPost, "/sync/push", strings.NewReader(body))
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgRequestTooLarge, decodeError(t, rr).Error)
}

func TestWithBodyLimit_StreamedBody(t *testing.T) {
	router := newBodyLimitedRouter(t)
	body := `{"clientVersion":1,"pad":"` + strings.Repeat("x", 100) + `"}`

	req := httptest.NewRequest(http.MethodPost, "/sync/pull", strings.NewReader(body))
	req.ContentLength = -1
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, app.MsgRequestTooLarge, decodeError(t, rr).Error)
}

func TestWithBodyLimit_SmallBody(t *testing.T) {
	router := newBodyLimitedRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/sync/pull", strings.NewReader(`{"clientVersion":1}`))
	req.Header.Set(SecretKeyHeader, testSecretKey)

	assert.Equal(t, http.StatusOK, serve(router, req).Code)
}
