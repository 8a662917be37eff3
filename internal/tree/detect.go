// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import "regexp"

var (
	directiveKeyPattern = regexp.MustCompile(`^\[.*\]$`)
	placeholderPattern  = regexp.MustCompile(`^\$\{[^}]*\}$`)
)

// IsDirectiveKey reports whether key names a loader, i.e. starts with "["
// and ends with "]".
func IsDirectiveKey(key string) bool {
	return directiveKeyPattern.MatchString(key)
}

// DirectiveOf reports whether m is a loader directive: a mapping with
// exactly one key that satisfies [IsDirectiveKey]. On success it returns
// the loader name without brackets and the parameter payload.
func DirectiveOf(m map[string]any) (name string, params any, ok bool) {
	if len(m) != 1 {
		return "", nil, false
	}

	for key, value := range m {
		if !IsDirectiveKey(key) {
			return "", nil, false
		}
		return key[1 : len(key)-1], value, true
	}

	return "", nil, false
}

// IsPlaceholder reports whether s is exactly one "${NAME}" token. Strings
// that merely contain a placeholder are not placeholders.
func IsPlaceholder(s string) bool {
	return placeholderPattern.MatchString(s)
}

// PlaceholderName returns the environment variable named by placeholder s.
// ok is false when s is not a placeholder.
func PlaceholderName(s string) (name string, ok bool) {
	if !IsPlaceholder(s) {
		return "", false
	}
	return s[2 : len(s)-1], true
}
