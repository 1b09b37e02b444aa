// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/onda-planner/onda-sync/internal/adapter"
	"github.com/onda-planner/onda-sync/internal/client"
	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/service"
	"github.com/onda-planner/onda-sync/internal/store"
	"github.com/onda-planner/onda-sync/internal/tui"
	"github.com/onda-planner/onda-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("onda-client", cfg.Log.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.DocumentStore.Close()

	syncAdapter := adapter.NewHTTPSyncAdapter(cfg.Adapter, cfg.App, log)
	services := service.NewClientServices(storages.DocumentStore, syncAdapter, *cfg, log)
	ui := tui.New(services, buildInfo, cfg.Workers.StatusInterval, log)

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		storages.DocumentStore.Close()
		os.Exit(1)
	}
}
