// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/crypto"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/internal/utils"
)

type Handler struct {
	services  *service.Services
	ownerKeys crypto.OwnerKeyDeriver
	limiter   *limiter.Limiter
	// hasher is nil when integrity checks are disabled.
	hasher *utils.Hasher

	minSecretKeyLength int
	maxBodyBytes       int64
	cfg                config.ServerTransport

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) (*Handler, error) {
	ownerKeys, err := crypto.NewOwnerKeyDeriver(cfg.App.OwnerKeySalt, crypto.DefaultOwnerKeyCacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating owner key deriver: %w", err)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.Server.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("error parsing rate limit %q: %w", cfg.Server.RateLimit, err)
	}

	h := &Handler{
		services:           services,
		ownerKeys:          ownerKeys,
		limiter:            limiter.New(memory.NewStore(), rate),
		minSecretKeyLength: cfg.App.MinSecretKeyLength,
		maxBodyBytes:       cfg.Server.MaxBodyBytes,
		cfg:                cfg.Server,
		logger:             logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().
		Str("func", "NewHandler").
		Str("rate_limit", cfg.Server.RateLimit).
		Bool("integrity_checks", h.hasher != nil).
		Msg("http handler created")

	return h, nil
}
