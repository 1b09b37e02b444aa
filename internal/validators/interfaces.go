// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the datasets exchanged
// between the planner client and the sync server.
//
// Validators are injected into services and handlers, which call Validate
// with the value and optionally the names of the fields to check. Omitting
// the field list checks every field the validator knows about.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
