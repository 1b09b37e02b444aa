// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMalformedDataset         = errors.New("dataset is not a JSON object")
	ErrEmptyDataset             = errors.New("dataset is required")
	ErrUnsupportedFormatVersion = errors.New("unsupported dataset format version")
	ErrInvalidCollection        = errors.New("collection must be an array")
	ErrInvalidColumnID          = errors.New("column id is required")
	ErrDuplicateColumnID        = errors.New("duplicate column id")
	ErrInvalidColumnType        = errors.New("column type is required")
	ErrInvalidDocumentID        = errors.New("document id is required")
	ErrInvalidSection           = errors.New("document section is not valid JSON")
)
