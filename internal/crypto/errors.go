// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrEmptySalt is returned by NewOwnerKeyDeriver for an empty salt.
var ErrEmptySalt = errors.New("owner key salt is empty")
