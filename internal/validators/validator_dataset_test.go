// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onda-planner/onda-sync/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validDataset() models.Dataset {
	return models.Dataset{
		Columns: []models.Column{
			{ID: "c1", Name: "Tasks", Type: "tasks", UniqueProperties: json.RawMessage(`{"Chosen":{}}`)},
			{ID: "c2", Name: "Notes", Type: "notebook"},
		},
		Calendar: []models.CalendarDocument{{ID: models.CalendarDocumentID}},
		Settings: []models.SettingsDocument{{ID: models.SettingsDocumentID, Theme: json.RawMessage(`{"darkMode":true}`)}},
		Version:  models.DatasetFormatVersion,
	}
}

// ── dispatch ──────────────────────────────────────────────────────────────────

func TestValidate_Dispatch(t *testing.T) {
	v := NewDatasetValidator()
	ctx := context.Background()
	ds := validDataset()

	assert.NoError(t, v.Validate(ctx, ds))
	assert.NoError(t, v.Validate(ctx, &ds))
	assert.ErrorIs(t, v.Validate(ctx, (*models.Dataset)(nil)), ErrEmptyDataset)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, ds, "weeks"), ErrUnknownField)
}

// ── decoded datasets ──────────────────────────────────────────────────────────

func TestValidateDataset_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Dataset)
		want   error
	}{
		{name: "valid", mutate: func(*models.Dataset) {}},
		{name: "empty dataset", mutate: func(d *models.Dataset) { *d = models.Dataset{} }},
		{name: "future format", mutate: func(d *models.Dataset) { d.Version = 3 }, want: ErrUnsupportedFormatVersion},
		{name: "missing column id", mutate: func(d *models.Dataset) { d.Columns[0].ID = "" }, want: ErrInvalidColumnID},
		{name: "missing column type", mutate: func(d *models.Dataset) { d.Columns[1].Type = "" }, want: ErrInvalidColumnType},
		{name: "duplicate column", mutate: func(d *models.Dataset) { d.Columns[1].ID = "c1" }, want: ErrDuplicateColumnID},
		{name: "bad unique properties", mutate: func(d *models.Dataset) { d.Columns[0].UniqueProperties = json.RawMessage(`{`) }, want: ErrInvalidSection},
		{name: "missing calendar id", mutate: func(d *models.Dataset) { d.Calendar[0].ID = "" }, want: ErrInvalidDocumentID},
		{name: "missing settings id", mutate: func(d *models.Dataset) { d.Settings[0].ID = "" }, want: ErrInvalidDocumentID},
		{name: "bad settings section", mutate: func(d *models.Dataset) { d.Settings[0].Theme = json.RawMessage(`[`) }, want: ErrInvalidSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := validDataset()
			tt.mutate(&ds)
			err := NewDatasetValidator().Validate(context.Background(), ds)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateDataset_FieldScoping(t *testing.T) {
	ds := validDataset()
	ds.Columns[0].ID = ""

	err := NewDatasetValidator().Validate(context.Background(), ds, FieldFormatVersion, FieldSettings)
	assert.NoError(t, err)
}

// ── raw datasets ──────────────────────────────────────────────────────────────

func TestValidateRaw_Rules(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "valid", raw: `{"columns":[{"id":"c1"}],"calendar":[],"settings":[],"version":2}`},
		{name: "empty object", raw: `{}`},
		{name: "null collection", raw: `{"columns":null}`},
		{name: "empty input", raw: ``, want: ErrEmptyDataset},
		{name: "not json", raw: `{"columns":`, want: ErrMalformedDataset},
		{name: "array root", raw: `[]`, want: ErrMalformedDataset},
		{name: "columns object", raw: `{"columns":{}}`, want: ErrInvalidCollection},
		{name: "settings string", raw: `{"settings":"x"}`, want: ErrInvalidCollection},
		{name: "column without id", raw: `{"columns":[{"name":"x"}]}`, want: ErrInvalidColumnID},
		{name: "version string", raw: `{"version":"2"}`, want: ErrUnsupportedFormatVersion},
		{name: "version too new", raw: `{"version":9}`, want: ErrUnsupportedFormatVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatasetValidator().Validate(context.Background(), json.RawMessage(tt.raw))
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateRaw_ByteSlice(t *testing.T) {
	err := NewDatasetValidator().Validate(context.Background(), []byte(`{"columns":[]}`))
	assert.NoError(t, err)
}
