// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/onda-planner/onda-sync/internal/adapter"
	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/store"
	"github.com/onda-planner/onda-sync/models"
)

type syncOperations struct {
	adapter   adapter.SyncAdapter
	documents store.DocumentStore

	logger *logger.Logger
}

// NewSyncOperations constructs the stateless SyncOperations over a transport
// adapter and the local document store.
func NewSyncOperations(syncAdapter adapter.SyncAdapter, documents store.DocumentStore, logger *logger.Logger) SyncOperations {
	return &syncOperations{
		adapter:   syncAdapter,
		documents: documents,
		logger:    logger,
	}
}

func (o *syncOperations) PullFromServer(ctx context.Context, serverURL, secretKey string, clientVersion int64, clientLastSync *time.Time) models.PullResult {
	resp, err := o.adapter.Pull(ctx,
		adapter.Remote{ServerURL: serverURL, SecretKey: secretKey},
		models.PullRequest{ClientVersion: clientVersion, ClientLastSync: clientLastSync},
	)
	if err != nil {
		o.logger.Err(err).Str("func", "syncOperations.PullFromServer").Msg("pull failed")
		return models.PullResult{Status: models.StatusError, Message: errorMessage(err)}
	}

	if !resp.Exists {
		return models.PullResult{Status: models.StatusSuccess, Message: resp.Message}
	}

	hasNewData := resp.Version > clientVersion
	if hasNewData && resp.Data == nil {
		o.logger.Error().
			Str("func", "syncOperations.PullFromServer").
			Int64("server_version", resp.Version).
			Msg("server reported newer data without a payload")
		return models.PullResult{Status: models.StatusError, Message: ErrMissingServerData.Error()}
	}

	o.logger.Debug().
		Str("func", "syncOperations.PullFromServer").
		Int64("client_version", clientVersion).
		Int64("server_version", resp.Version).
		Bool("has_conflict", resp.HasConflict).
		Msg("pulled")

	return models.PullResult{
		Status:      models.StatusSuccess,
		HasNewData:  hasNewData,
		Exists:      true,
		Data:        resp.Data,
		Version:     resp.Version,
		HasConflict: resp.HasConflict,
		Message:     resp.Message,
	}
}

func (o *syncOperations) PushToServer(ctx context.Context, serverURL, secretKey string, clientVersion int64) models.PushResult {
	data, err := o.documents.ExportData(ctx)
	if err != nil {
		o.logger.Err(err).Str("func", "syncOperations.PushToServer").Msg("failed to export local data")
		return models.PushResult{Message: err.Error()}
	}

	resp, err := o.adapter.Push(ctx,
		adapter.Remote{ServerURL: serverURL, SecretKey: secretKey},
		models.PushRequest{Data: &data, ClientVersion: clientVersion},
	)
	if err != nil {
		o.logger.Err(err).Str("func", "syncOperations.PushToServer").Msg("push failed")
		return models.PushResult{Message: errorMessage(err)}
	}
	if !resp.Success {
		return models.PushResult{Message: resp.Message}
	}

	o.logger.Info().
		Str("func", "syncOperations.PushToServer").
		Int64("client_version", clientVersion).
		Int64("server_version", resp.Version).
		Msg("pushed")

	return models.PushResult{
		Success:  true,
		Version:  resp.Version,
		LastSync: resp.LastSync,
		Message:  app.MsgPushCompleted,
	}
}

func (o *syncOperations) MergeServerData(ctx context.Context, data *models.Dataset, serverVersion int64) models.OperationResult {
	if data == nil {
		return models.OperationResult{Status: models.StatusError, Message: ErrMissingServerData.Error()}
	}

	if err := o.documents.ImportData(ctx, *data); err != nil {
		o.logger.Err(err).
			Str("func", "syncOperations.MergeServerData").
			Int64("server_version", serverVersion).
			Msg("failed to import server data")
		return models.OperationResult{Status: models.StatusError, Message: err.Error()}
	}

	return models.OperationResult{Status: models.StatusSuccess, Message: app.MsgDataMerged}
}

func (o *syncOperations) TestConnection(ctx context.Context, serverURL, secretKey string) models.TestConnectionResult {
	if strings.TrimSpace(serverURL) == "" {
		return models.TestConnectionResult{Status: models.StatusError, Message: app.MsgSyncNotConfigured}
	}
	if len(secretKey) < models.MinSecretKeyLength {
		return models.TestConnectionResult{Status: models.StatusError, Message: app.MsgInvalidSecretKeyShort}
	}

	health, err := o.adapter.Health(ctx, serverURL)
	if err != nil {
		o.logger.Warn().Err(err).Str("func", "syncOperations.TestConnection").Msg("health check failed")
		if errors.Is(err, adapter.ErrInvalidServerURL) {
			return models.TestConnectionResult{Status: models.StatusError, Message: err.Error()}
		}
		return models.TestConnectionResult{Status: models.StatusError, Message: app.MsgServerNotResponding}
	}

	_, err = o.adapter.GetData(ctx, adapter.Remote{ServerURL: serverURL, SecretKey: secretKey})
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.TestConnectionResult{Status: models.StatusError, Message: app.MsgInvalidSecretKeyShort}
	}
	if err != nil {
		o.logger.Warn().Err(err).Str("func", "syncOperations.TestConnection").Msg("authenticated probe failed")
		return models.TestConnectionResult{Status: models.StatusError, Message: errorMessage(err)}
	}

	return models.TestConnectionResult{
		Status:       models.StatusSuccess,
		Message:      app.MsgConnectionSuccessful,
		ServerStatus: health.Status,
	}
}

func (o *syncOperations) DeleteServerData(ctx context.Context, serverURL, secretKey string) models.OperationResult {
	resp, err := o.adapter.DeleteData(ctx, adapter.Remote{ServerURL: serverURL, SecretKey: secretKey})
	if err != nil {
		o.logger.Err(err).Str("func", "syncOperations.DeleteServerData").Msg("delete failed")
		return models.OperationResult{Status: models.StatusError, Message: errorMessage(err)}
	}
	if !resp.Success {
		return models.OperationResult{Status: models.StatusError, Message: resp.Message}
	}

	return models.OperationResult{Status: models.StatusSuccess, Message: app.MsgServerDataDeleted}
}

// errorMessage turns an adapter error into the message shown to the user.
// Non-2xx responses read "Server error: <status>".
func errorMessage(err error) string {
	var httpErr *adapter.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return fmt.Sprintf(app.MsgServerErrorTemplate, httpErr.StatusCode)
	case errors.Is(err, adapter.ErrServerUnreachable):
		return app.MsgServerNotResponding
	default:
		return err.Error()
	}
}
