// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onda-planner/onda-sync/internal/adapter"
	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/mock"
	"github.com/onda-planner/onda-sync/models"
)

const (
	testServerURL = "http://sync.local:3001"
	testSecretKey = "0123456789abcdef"
)

var testRemote = adapter.Remote{ServerURL: testServerURL, SecretKey: testSecretKey}

func newTestOperations(t *testing.T) (SyncOperations, *mock.MockSyncAdapter, *mock.MockDocumentStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	syncAdapter := mock.NewMockSyncAdapter(ctrl)
	documents := mock.NewMockDocumentStore(ctrl)
	return NewSyncOperations(syncAdapter, documents, logger.Nop()), syncAdapter, documents
}

func sampleDataset() models.Dataset {
	return models.Dataset{
		Columns:    []models.Column{{ID: "c1", Name: "Tasks", Type: "tasks", Width: 200}},
		Calendar:   []models.CalendarDocument{},
		Settings:   []models.SettingsDocument{},
		ExportDate: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
		Version:    models.DatasetFormatVersion,
	}
}

func httpError(status int) error {
	return adapter.NewHTTPError(status, http.StatusText(status))
}

// ── PullFromServer ────────────────────────────────────────────────────────────

func TestSyncOperations_Pull_NoServerData(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().
		Pull(gomock.Any(), testRemote, models.PullRequest{ClientVersion: 3}).
		Return(models.PullResponse{Exists: false, Message: app.MsgNoDataOnServer}, nil)

	res := ops.PullFromServer(context.Background(), testServerURL, testSecretKey, 3, nil)

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.False(t, res.HasNewData)
	assert.False(t, res.Exists)
	assert.Nil(t, res.Data)
}

func TestSyncOperations_Pull_NewerData(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	data := sampleDataset()
	syncAdapter.EXPECT().
		Pull(gomock.Any(), testRemote, gomock.Any()).
		Return(models.PullResponse{Exists: true, Version: 5, Data: &data, HasConflict: true}, nil)

	res := ops.PullFromServer(context.Background(), testServerURL, testSecretKey, 2, nil)

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.True(t, res.HasNewData)
	assert.True(t, res.HasConflict)
	assert.Equal(t, int64(5), res.Version)
	require.NotNil(t, res.Data)
	assert.Equal(t, data.Columns, res.Data.Columns)
}

func TestSyncOperations_Pull_SameVersionHasNoNewData(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	data := sampleDataset()
	syncAdapter.EXPECT().
		Pull(gomock.Any(), testRemote, gomock.Any()).
		Return(models.PullResponse{Exists: true, Version: 4, Data: &data}, nil)

	res := ops.PullFromServer(context.Background(), testServerURL, testSecretKey, 4, nil)

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.False(t, res.HasNewData)
}

func TestSyncOperations_Pull_NewerVersionWithoutPayload(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().
		Pull(gomock.Any(), testRemote, gomock.Any()).
		Return(models.PullResponse{Exists: true, Version: 6}, nil)

	res := ops.PullFromServer(context.Background(), testServerURL, testSecretKey, 1, nil)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, ErrMissingServerData.Error(), res.Message)
}

func TestSyncOperations_Pull_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "server error", err: httpError(http.StatusInternalServerError), message: "Server error: 500"},
		{name: "unauthorized", err: httpError(http.StatusUnauthorized), message: "Server error: 401"},
		{name: "unreachable", err: fmt.Errorf("%w: connection refused", adapter.ErrServerUnreachable), message: app.MsgServerNotResponding},
		{name: "decode", err: fmt.Errorf("%w: unexpected EOF", adapter.ErrDecodingResponse), message: "unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, syncAdapter, _ := newTestOperations(t)
			syncAdapter.EXPECT().Pull(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.PullResponse{}, tt.err)

			res := ops.PullFromServer(context.Background(), testServerURL, testSecretKey, 0, nil)

			assert.Equal(t, models.StatusError, res.Status)
			assert.Contains(t, res.Message, tt.message)
		})
	}
}

// ── PushToServer ──────────────────────────────────────────────────────────────

func TestSyncOperations_Push_Success(t *testing.T) {
	ops, syncAdapter, documents := newTestOperations(t)
	data := sampleDataset()
	lastSync := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	documents.EXPECT().ExportData(gomock.Any()).Return(data, nil)
	syncAdapter.EXPECT().
		Push(gomock.Any(), testRemote, models.PushRequest{Data: &data, ClientVersion: 2}).
		Return(models.PushResponse{Success: true, Version: 3, LastSync: &lastSync}, nil)

	res := ops.PushToServer(context.Background(), testServerURL, testSecretKey, 2)

	assert.True(t, res.Success)
	assert.Equal(t, int64(3), res.Version)
	require.NotNil(t, res.LastSync)
	assert.True(t, lastSync.Equal(*res.LastSync))
	assert.Equal(t, app.MsgPushCompleted, res.Message)
}

func TestSyncOperations_Push_ExportFailure(t *testing.T) {
	ops, _, documents := newTestOperations(t)
	documents.EXPECT().ExportData(gomock.Any()).Return(models.Dataset{}, errors.New("read transaction failed"))

	res := ops.PushToServer(context.Background(), testServerURL, testSecretKey, 2)

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "read transaction failed")
}

func TestSyncOperations_Push_ServerError(t *testing.T) {
	ops, syncAdapter, documents := newTestOperations(t)
	documents.EXPECT().ExportData(gomock.Any()).Return(sampleDataset(), nil)
	syncAdapter.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.PushResponse{}, httpError(http.StatusServiceUnavailable))

	res := ops.PushToServer(context.Background(), testServerURL, testSecretKey, 2)

	assert.False(t, res.Success)
	assert.Equal(t, "Server error: 503", res.Message)
}

func TestSyncOperations_Push_Rejected(t *testing.T) {
	ops, syncAdapter, documents := newTestOperations(t)
	documents.EXPECT().ExportData(gomock.Any()).Return(sampleDataset(), nil)
	syncAdapter.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.PushResponse{Success: false, Message: "nope"}, nil)

	res := ops.PushToServer(context.Background(), testServerURL, testSecretKey, 2)

	assert.False(t, res.Success)
	assert.Equal(t, "nope", res.Message)
}

// ── MergeServerData ───────────────────────────────────────────────────────────

func TestSyncOperations_Merge(t *testing.T) {
	ops, _, documents := newTestOperations(t)
	data := sampleDataset()
	documents.EXPECT().ImportData(gomock.Any(), data).Return(nil)

	res := ops.MergeServerData(context.Background(), &data, 4)

	assert.True(t, res.OK())
	assert.Equal(t, app.MsgDataMerged, res.Message)
}

func TestSyncOperations_Merge_ImportFailure(t *testing.T) {
	ops, _, documents := newTestOperations(t)
	data := sampleDataset()
	documents.EXPECT().ImportData(gomock.Any(), data).Return(errors.New("constraint failed"))

	res := ops.MergeServerData(context.Background(), &data, 4)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Message, "constraint failed")
}

func TestSyncOperations_Merge_NilData(t *testing.T) {
	ops, _, _ := newTestOperations(t)

	res := ops.MergeServerData(context.Background(), nil, 4)

	assert.Equal(t, models.StatusError, res.Status)
}

// ── TestConnection ────────────────────────────────────────────────────────────

func TestSyncOperations_TestConnection_Success(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().Health(gomock.Any(), testServerURL).Return(models.HealthResponse{Status: "ok"}, nil)
	syncAdapter.EXPECT().GetData(gomock.Any(), testRemote).Return(models.PullResponse{Exists: false}, nil)

	res := ops.TestConnection(context.Background(), testServerURL, testSecretKey)

	assert.Equal(t, models.StatusSuccess, res.Status)
	assert.Equal(t, app.MsgConnectionSuccessful, res.Message)
	assert.Equal(t, "ok", res.ServerStatus)
}

func TestSyncOperations_TestConnection_ShortKeySkipsNetwork(t *testing.T) {
	ops, _, _ := newTestOperations(t)

	res := ops.TestConnection(context.Background(), testServerURL, "short")

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, app.MsgInvalidSecretKeyShort, res.Message)
}

func TestSyncOperations_TestConnection_EmptyURL(t *testing.T) {
	ops, _, _ := newTestOperations(t)

	res := ops.TestConnection(context.Background(), "  ", testSecretKey)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, app.MsgSyncNotConfigured, res.Message)
}

func TestSyncOperations_TestConnection_ServerDown(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().
		Health(gomock.Any(), testServerURL).
		Return(models.HealthResponse{}, fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrServerUnreachable))

	res := ops.TestConnection(context.Background(), testServerURL, testSecretKey)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, app.MsgServerNotResponding, res.Message)
}

func TestSyncOperations_TestConnection_InvalidURL(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().
		Health(gomock.Any(), "ftp://x").
		Return(models.HealthResponse{}, fmt.Errorf("%w: unsupported scheme", adapter.ErrInvalidServerURL))

	res := ops.TestConnection(context.Background(), "ftp://x", testSecretKey)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Contains(t, res.Message, "unsupported scheme")
}

func TestSyncOperations_TestConnection_Unauthorized(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().Health(gomock.Any(), testServerURL).Return(models.HealthResponse{Status: "ok"}, nil)
	syncAdapter.EXPECT().
		GetData(gomock.Any(), testRemote).
		Return(models.PullResponse{}, httpError(http.StatusUnauthorized))

	res := ops.TestConnection(context.Background(), testServerURL, testSecretKey)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, app.MsgInvalidSecretKeyShort, res.Message)
}

func TestSyncOperations_TestConnection_ProbeServerError(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().Health(gomock.Any(), testServerURL).Return(models.HealthResponse{Status: "degraded"}, nil)
	syncAdapter.EXPECT().GetData(gomock.Any(), testRemote).Return(models.PullResponse{}, httpError(http.StatusServiceUnavailable))

	res := ops.TestConnection(context.Background(), testServerURL, testSecretKey)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, "Server error: 503", res.Message)
}

// ── DeleteServerData ──────────────────────────────────────────────────────────

func TestSyncOperations_DeleteServerData(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().
		DeleteData(gomock.Any(), testRemote).
		Return(models.DeleteResponse{Success: true, Message: app.MsgDataDeleted}, nil)

	res := ops.DeleteServerData(context.Background(), testServerURL, testSecretKey)

	assert.True(t, res.OK())
	assert.Equal(t, app.MsgServerDataDeleted, res.Message)
}

func TestSyncOperations_DeleteServerData_Error(t *testing.T) {
	ops, syncAdapter, _ := newTestOperations(t)
	syncAdapter.EXPECT().DeleteData(gomock.Any(), testRemote).Return(models.DeleteResponse{}, httpError(http.StatusTooManyRequests))

	res := ops.DeleteServerData(context.Background(), testServerURL, testSecretKey)

	assert.Equal(t, models.StatusError, res.Status)
	assert.Equal(t, "Server error: 429", res.Message)
}
