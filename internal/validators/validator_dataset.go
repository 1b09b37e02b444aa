// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/onda-planner/onda-sync/models"
)

const (
	FieldFormatVersion = "version"
	FieldColumns       = "columns"
	FieldCalendar      = "calendar"
	FieldSettings      = "settings"
)

var datasetFields = []string{FieldFormatVersion, FieldColumns, FieldCalendar, FieldSettings}

// DatasetValidator checks datasets before they are imported locally or
// stored on the server. It accepts decoded [models.Dataset] values and raw
// JSON, which is inspected with gjson without decoding.
type DatasetValidator struct {
}

func NewDatasetValidator() Validator {
	return &DatasetValidator{}
}

func (v *DatasetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Dataset:
		return v.validateDataset(ctx, value, fields...)
	case *models.Dataset:
		if value == nil {
			return ErrEmptyDataset
		}
		return v.validateDataset(ctx, *value, fields...)

	case json.RawMessage:
		return v.validateRaw(ctx, value, fields...)
	case []byte:
		return v.validateRaw(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DatasetValidator) validateDataset(_ context.Context, data models.Dataset, fields ...string) error {
	if len(fields) == 0 {
		fields = datasetFields
	}

	for _, f := range fields {
		switch f {
		case FieldFormatVersion:
			if data.Version < 0 || data.Version > models.DatasetFormatVersion {
				return fmt.Errorf("%w: %d", ErrUnsupportedFormatVersion, data.Version)
			}
		case FieldColumns:
			seen := make(map[string]struct{}, len(data.Columns))
			for i, col := range data.Columns {
				if col.ID == "" {
					return fmt.Errorf("validation error at column %d: %w", i, ErrInvalidColumnID)
				}
				if col.Type == "" {
					return fmt.Errorf("validation error at column %q: %w", col.ID, ErrInvalidColumnType)
				}
				if _, dup := seen[col.ID]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateColumnID, col.ID)
				}
				seen[col.ID] = struct{}{}
				if len(col.UniqueProperties) > 0 && !gjson.ValidBytes(col.UniqueProperties) {
					return fmt.Errorf("validation error at column %q: %w", col.ID, ErrInvalidSection)
				}
			}
		case FieldCalendar:
			for i, doc := range data.Calendar {
				if doc.ID == "" {
					return fmt.Errorf("validation error at calendar %d: %w", i, ErrInvalidDocumentID)
				}
			}
		case FieldSettings:
			for i, doc := range data.Settings {
				if doc.ID == "" {
					return fmt.Errorf("validation error at settings %d: %w", i, ErrInvalidDocumentID)
				}
				for _, section := range []json.RawMessage{doc.Theme, doc.Table, doc.UI, doc.Header, doc.Calendar} {
					if len(section) > 0 && !gjson.ValidBytes(section) {
						return fmt.Errorf("validation error at settings %q: %w", doc.ID, ErrInvalidSection)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRaw checks the shape of an undecoded dataset: a JSON object whose
// collections, when present, are arrays and whose format version is known.
func (v *DatasetValidator) validateRaw(_ context.Context, raw []byte, fields ...string) error {
	if len(raw) == 0 {
		return ErrEmptyDataset
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return ErrMalformedDataset
	}

	if len(fields) == 0 {
		fields = datasetFields
	}

	for _, f := range fields {
		value := gjson.GetBytes(raw, f)
		switch f {
		case FieldFormatVersion:
			if !value.Exists() {
				continue
			}
			if value.Type != gjson.Number {
				return fmt.Errorf("%w: %s", ErrUnsupportedFormatVersion, value.Raw)
			}
			if n := value.Int(); n < 0 || n > models.DatasetFormatVersion {
				return fmt.Errorf("%w: %d", ErrUnsupportedFormatVersion, n)
			}
		case FieldColumns, FieldCalendar, FieldSettings:
			if value.Exists() && value.Type != gjson.Null && !value.IsArray() {
				return fmt.Errorf("%w: %s", ErrInvalidCollection, f)
			}
			if f == FieldColumns {
				for i, col := range value.Array() {
					if col.Get("id").String() == "" {
						return fmt.Errorf("validation error at column %d: %w", i, ErrInvalidColumnID)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
