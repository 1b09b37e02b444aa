// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/onda-planner/onda-sync/internal/adapter"
	"github.com/onda-planner/onda-sync/internal/config"
	"github.com/onda-planner/onda-sync/internal/logger"
	"github.com/onda-planner/onda-sync/internal/store"
)

// ClientServices bundles the client services. The planner data services are
// already wrapped so that every successful write requests a debounced sync.
type ClientServices struct {
	SyncService     SyncService
	ChangeNotifier  ChangeNotifier
	ColumnsService  ColumnsService
	CalendarService CalendarService
	SettingsService SettingsService
}

func NewClientServices(documents store.DocumentStore, syncAdapter adapter.SyncAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	settings := newSettingsDocument(documents)

	syncSvc := NewSyncService(
		newSyncConfigManager(settings, logger),
		NewSyncOperations(syncAdapter, documents, logger),
		NewSyncStateManager(cfg.Workers.DebounceDelay, logger),
		cfg.Workers,
		logger,
	)
	notifier := NewChangeNotifier(syncSvc)

	return &ClientServices{
		SyncService:     syncSvc,
		ChangeNotifier:  notifier,
		ColumnsService:  NewNotifyingColumnsService(notifier).Wrap(NewColumnsService(documents)),
		CalendarService: NewNotifyingCalendarService(notifier).Wrap(NewCalendarService(documents)),
		SettingsService: NewNotifyingSettingsService(notifier).Wrap(newSettingsService(settings)),
	}
}
