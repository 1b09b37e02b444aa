// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/store"
)

type Services struct {
	DatasetService DatasetService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(repository store.DatasetRepository, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DatasetService: NewDatasetService(repository, logger),
		HealthService:  NewHealthService(repository, logger),
		AppInfoService: appInfo,
	}, nil
}
