// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// DatasetFormatVersion is the export format written by this client.
const DatasetFormatVersion = 2

// Collection names a collection of the local document store.
type Collection string

const (
	CollectionSettings Collection = "settings"
	CollectionColumns  Collection = "columns"
	CollectionCalendar Collection = "calendar"
)

// Collections lists every collection that takes part in export and import.
var Collections = []Collection{CollectionSettings, CollectionColumns, CollectionCalendar}

const (
	// SettingsDocumentID is the id of the single settings document.
	SettingsDocumentID = "global"

	// CalendarDocumentID is the id of the single calendar document.
	CalendarDocumentID = "main"
)

// Document is a raw JSON document stored in a collection.
type Document struct {
	Collection Collection      `json:"collection"`
	ID         string          `json:"id"`
	Body       json.RawMessage `json:"body"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Dataset is the unit of transfer between client and server: a full export
// of every collection.
type Dataset struct {
	Columns    []Column           `json:"columns"`
	Calendar   []CalendarDocument `json:"calendar"`
	Settings   []SettingsDocument `json:"settings"`
	Weeks      []json.RawMessage  `json:"weeks"`
	ExportDate time.Time          `json:"exportDate"`
	Version    int                `json:"version"`
}

// Column is one column of the weekly table. Type-specific data stays opaque
// in UniqueProperties.
type Column struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	EmojiIcon        string          `json:"emojiIcon,omitempty"`
	NameVisible      bool            `json:"nameVisible"`
	Width            float64         `json:"width"`
	Description      string          `json:"description,omitempty"`
	UniqueProperties json.RawMessage `json:"uniqueProperties,omitempty"`
	UpdatedAt        int64           `json:"updatedAt"`
}

// CalendarDocument holds the calendar entries.
type CalendarDocument struct {
	ID        string            `json:"id"`
	Body      []json.RawMessage `json:"body"`
	UpdatedAt int64             `json:"updatedAt"`
}

// SettingsDocument holds application settings. Sections other than Sync are
// kept as raw JSON.
type SettingsDocument struct {
	ID        string          `json:"id"`
	Theme     json.RawMessage `json:"theme,omitempty"`
	Table     json.RawMessage `json:"table,omitempty"`
	UI        json.RawMessage `json:"ui,omitempty"`
	Header    json.RawMessage `json:"header,omitempty"`
	Calendar  json.RawMessage `json:"calendar,omitempty"`
	Sync      *SyncConfig     `json:"sync,omitempty"`
	UpdatedAt int64           `json:"updatedAt"`
}
