// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoDataProvided   = errors.New("no data provided")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrOwnerKeyNotFound = errors.New("owner key not found in context")
	ErrStorageFailure   = errors.New("storage failure")
	ErrStorageBusy      = errors.New("storage temporarily unavailable")

	ErrSettingsNotFound  = errors.New("settings not found")
	ErrInvalidSettings   = errors.New("invalid settings document")
	ErrUnknownSection    = errors.New("unknown settings section")
	ErrColumnNotFound    = errors.New("column not found")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrMissingServerData = errors.New("server reported newer data without a payload")
)
