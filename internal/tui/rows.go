// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type row struct {
	path  string
	value string
}

// flatten lists the leaves of tree in path order. Arrays are leaves and
// render as JSON; an empty object renders as "{}".
func flatten(tree map[string]any) []row {
	var rows []row
	walk("", tree, &rows)
	slices.SortFunc(rows, func(a, b row) int {
		return strings.Compare(a.path, b.path)
	})
	return rows
}

func walk(prefix string, v any, rows *[]row) {
	m, ok := v.(map[string]any)
	if !ok {
		*rows = append(*rows, row{path: prefix, value: render(v)})
		return
	}
	if len(m) == 0 && prefix != "" {
		*rows = append(*rows, row{path: prefix, value: "{}"})
		return
	}
	for key, child := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		walk(path, child, rows)
	}
}

func render(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case []any:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	default:
		return fmt.Sprint(value)
	}
}

func filterRows(rows []row, query string) []row {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	var out []row
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.path), query) || strings.Contains(strings.ToLower(r.value), query) {
			out = append(out, r)
		}
	}
	return out
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
