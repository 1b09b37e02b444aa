// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/tidwall/gjson"
)

// Filter matches documents whose JSON body holds Value at Path. Path uses
// gjson syntax ("type", "theme.darkMode", "body.#").
type Filter struct {
	Path  string
	Value any
}

// Eq builds a [Filter].
func Eq(path string, value any) Filter {
	return Filter{Path: path, Value: value}
}

// Match reports whether body satisfies f. Numbers are compared as float64,
// so Eq("width", 120) matches a stored 120.0.
func (f Filter) Match(body []byte) bool {
	res := gjson.GetBytes(body, f.Path)
	if !res.Exists() {
		return f.Value == nil
	}

	switch want := f.Value.(type) {
	case nil:
		return res.Type == gjson.Null
	case string:
		return res.Type == gjson.String && res.Str == want
	case bool:
		return (res.Type == gjson.True || res.Type == gjson.False) && res.Bool() == want
	case int:
		return res.Type == gjson.Number && res.Num == float64(want)
	case int64:
		return res.Type == gjson.Number && res.Num == float64(want)
	case float64:
		return res.Type == gjson.Number && res.Num == want
	default:
		return false
	}
}

func matchAll(body []byte, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(body) {
			return false
		}
	}
	return true
}
