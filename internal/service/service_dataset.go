// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/onda-planner/onda-sync/internal/app"
	"github.com/onda-planner/onda-sync/internal/crypto"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/store"
	"github.com/onda-planner/onda-sync/internal/validators"
	"github.com/onda-planner/onda-sync/models"
)

type datasetService struct {
	repository store.DatasetRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewDatasetService(repository store.DatasetRepository, logger *logger.Logger) DatasetService {
	return &datasetService{
		repository: repository,
		validator:  validators.NewDatasetValidator(),
		logger:     logger,
	}
}

func (s *datasetService) Pull(ctx context.Context, ownerKey string, req models.PullRequest) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	stored, err := s.repository.Get(ctx, ownerKey)
	if errors.Is(err, store.ErrDatasetNotFound) {
		return models.PullResponse{Exists: false, Message: app.MsgNoDataOnServer}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "datasetService.Pull").Msg("error getting dataset")
		return models.PullResponse{}, storageError(err)
	}

	hasConflict := req.ClientVersion > 0 && req.ClientVersion < stored.Version
	if hasConflict {
		log.Info().
			Str("func", "datasetService.Pull").
			Int64("client_version", req.ClientVersion).
			Int64("server_version", stored.Version).
			Msg("client is behind the server")
	}

	return pullResponse(stored, hasConflict), nil
}

func (s *datasetService) Push(ctx context.Context, ownerKey string, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	if req.Data == nil {
		return models.PushResponse{}, ErrNoDataProvided
	}
	if err := s.validator.Validate(ctx, *req.Data); err != nil {
		log.Debug().Err(err).Str("func", "datasetService.Push").Msg("dataset validation failed")
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	content, err := json.Marshal(req.Data)
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := s.repository.Save(ctx, ownerKey, *req.Data, crypto.ContentHash(content))
	if err != nil {
		log.Err(err).Str("func", "datasetService.Push").Msg("error saving dataset")
		return models.PushResponse{}, storageError(err)
	}

	log.Info().
		Str("func", "datasetService.Push").
		Int64("client_version", req.ClientVersion).
		Int64("server_version", stored.Version).
		Int("size", len(content)).
		Msg("dataset saved")

	lastSync := stored.LastSync
	return models.PushResponse{
		Success:  true,
		Version:  stored.Version,
		LastSync: &lastSync,
		Message:  app.MsgDataSaved,
	}, nil
}

func (s *datasetService) Get(ctx context.Context, ownerKey string) (models.PullResponse, error) {
	stored, err := s.repository.Get(ctx, ownerKey)
	if errors.Is(err, store.ErrDatasetNotFound) {
		return models.PullResponse{Exists: false, Message: app.MsgNoDataOnServer}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "datasetService.Get").Msg("error getting dataset")
		return models.PullResponse{}, storageError(err)
	}

	return pullResponse(stored, false), nil
}

func (s *datasetService) Delete(ctx context.Context, ownerKey string) (models.DeleteResponse, error) {
	err := s.repository.Delete(ctx, ownerKey)
	if errors.Is(err, store.ErrDatasetNotFound) {
		return models.DeleteResponse{Success: true, Message: app.MsgDataNotFound}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "datasetService.Delete").Msg("error deleting dataset")
		return models.DeleteResponse{}, storageError(err)
	}

	return models.DeleteResponse{Success: true, Message: app.MsgDataDeleted}, nil
}

func pullResponse(stored models.StoredDataset, hasConflict bool) models.PullResponse {
	content := stored.Content
	lastSync := stored.LastSync

	return models.PullResponse{
		Exists:      true,
		Version:     stored.Version,
		Data:        &content,
		LastSync:    &lastSync,
		HasConflict: hasConflict,
		Message:     app.MsgDataRetrieved,
	}
}

// storageError classifies repository failures for the handlers.
func storageError(err error) error {
	switch {
	case errors.Is(err, store.ErrStorageUnavailable):
		return fmt.Errorf("%w: %w", ErrStorageBusy, err)
	case errors.Is(err, store.ErrInvalidDataset):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
}
