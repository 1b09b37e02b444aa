// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var errInvalidInterval = errors.New("sync interval must be a whole number of minutes")
