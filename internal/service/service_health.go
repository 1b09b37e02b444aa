// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/store"
	"github.com/onda-planner/onda-sync/models"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"

	healthPingTimeout = 2 * time.Second
)

type healthService struct {
	repository store.DatasetRepository
	now        func() time.Time

	logger *logger.Logger
}

func NewHealthService(repository store.DatasetRepository, logger *logger.Logger) HealthService {
	return &healthService{repository: repository, now: time.Now, logger: logger}
}

func (s *healthService) Check(ctx context.Context) models.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	resp := models.HealthResponse{
		Status:    HealthStatusOK,
		Database:  DatabaseConnected,
		Timestamp: s.now().UTC(),
	}

	if err := s.repository.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "healthService.Check").Msg("database ping failed")
		resp.Status = HealthStatusDegraded
		resp.Database = DatabaseDisconnected
	}

	return resp
}
