// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/models"
)

func sampleDataset() *models.Dataset {
	return &models.Dataset{
		Columns:    []models.Column{{ID: "c1", Name: "Tasks", Type: "tasks", Width: 200}},
		Calendar:   []models.CalendarDocument{},
		Settings:   []models.SettingsDocument{},
		ExportDate: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		Version:    models.DatasetFormatVersion,
	}
}

// ── pull ─────────────────────────────────────────────────────────────────────

func TestPull(t *testing.T) {
	datasets := &stubDatasetService{
		pullResp: models.PullResponse{Exists: true, Version: 7, Data: sampleDataset(), HasConflict: true, Message: app.MsgDataRetrieved},
	}
	router := newTestHandler(t, datasets).Init()

	req := httptest.NewRequest(http.MethodPost, "/sync/pull", jsonBody(t, models.PullRequest{ClientVersion: 3}))
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.PullResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Exists)
	assert.True(t, resp.HasConflict)
	assert.Equal(t, int64(7), resp.Version)
	assert.Equal(t, int64(3), datasets.lastPull.ClientVersion)
}

func TestPull_InvalidBody(t *testing.T) {
	router := newTestHandler(t, &stubDatasetService{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/sync/pull", strings.NewReader(`{"clientVersion":`))
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeError(t, rr).Error)
}

func TestPull_OwnerKeyIsDerived(t *testing.T) {
	datasets := &stubDatasetService{}
	router := newTestHandler(t, datasets).Init()

	for _, key := range []string{testSecretKey, testSecretKey, "another-secret-key"} {
		req := httptest.NewRequest(http.MethodPost, "/sync/pull", strings.NewReader(`{}`))
		req.Header.Set(SecretKeyHeader, key)
		require.Equal(t, http.StatusOK, serve(router, req).Code)
	}

	keys := datasets.seenOwnerKeys()
	require.Len(t, keys, 3)
	assert.NotEqual(t, testSecretKey, keys[0], "the raw secret never reaches the service")
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
}

// ── push ─────────────────────────────────────────────────────────────────────

func TestPush(t *testing.T) {
	now := time.Now().UTC()
	datasets := &stubDatasetService{
		pushResp: models.PushResponse{Success: true, Version: 8, LastSync: &now, Message: app.MsgDataSaved},
	}
	router := newTestHandler(t, datasets).Init()

	req := httptest.NewRequest(http.MethodPost, "/sync/push", jsonBody(t, models.PushRequest{Data: sampleDataset(), ClientVersion: 7}))
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.PushResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(8), resp.Version)
	require.NotNil(t, datasets.lastPush.Data)
	assert.Equal(t, "c1", datasets.lastPush.Data.Columns[0].ID)
}

func TestPush_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "no data",
			err:     service.ErrNoDataProvided,
			status:  http.StatusBadRequest,
			message: service.ErrNoDataProvided.Error(),
		},
		{
			name:    "invalid data",
			err:     fmt.Errorf("%w: columns[0].type is required", service.ErrInvalidDataProvided),
			status:  http.StatusBadRequest,
			message: "invalid data provided: columns[0].type is required",
		},
		{
			name:    "storage busy",
			err:     fmt.Errorf("%w: %w", service.ErrStorageBusy, errors.New("too many connections")),
			status:  http.StatusServiceUnavailable,
			message: http.StatusText(http.StatusServiceUnavailable),
		},
		{
			name:    "storage failure hides details",
			err:     fmt.Errorf("%w: %w", service.ErrStorageFailure, errors.New("relation does not exist")),
			status:  http.StatusInternalServerError,
			message: app.MsgInternalServerError,
		},
		{
			name:    "unknown error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, &stubDatasetService{err: tt.err}).Init()

			req := httptest.NewRequest(http.MethodPost, "/sync/push", jsonBody(t, models.PushRequest{ClientVersion: 1}))
			req.Header.Set(SecretKeyHeader, testSecretKey)
			rr := serve(router, req)

			require.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.message, decodeError(t, rr).Error)
		})
	}
}

// ── data ─────────────────────────────────────────────────────────────────────

func TestGetData(t *testing.T) {
	datasets := &stubDatasetService{getResp: models.PullResponse{Exists: false, Message: app.MsgNoDataOnServer}}
	router := newTestHandler(t, datasets).Init()

	req := httptest.NewRequest(http.MethodGet, "/sync/data", nil)
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.PullResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Exists)
	assert.Equal(t, app.MsgNoDataOnServer, resp.Message)
}

func TestDeleteData(t *testing.T) {
	datasets := &stubDatasetService{deleteResp: models.DeleteResponse{Success: true, Message: app.MsgDataDeleted}}
	router := newTestHandler(t, datasets).Init()

	req := httptest.NewRequest(http.MethodDelete, "/sync/data", nil)
	req.Header.Set(SecretKeyHeader, testSecretKey)
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.DeleteResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgDataDeleted, resp.Message)
}

func TestSyncHandlers_RequireOwnerKey(t *testing.T) {
	h := newTestHandler(t, &stubDatasetService{})

	for name, handler := range map[string]http.HandlerFunc{
		"pull":   h.pull,
		"push":   h.push,
		"get":    h.getData,
		"delete": h.deleteData,
	} {
		t.Run(name, func(t *testing.T) {
			rr := serve(handler, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
