// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package declaration writes a Go source file declaring a struct type that
// mirrors the shape of a resolved configuration tree, so that applications
// can decode the tree into typed values.
package declaration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidOptions is returned when the package or type name is not a valid
// Go identifier.
var ErrInvalidOptions = errors.New("invalid declaration options")

// Options names the generated package and root type.
type Options struct {
	Package  string
	TypeName string
}

// Write renders the declaration of conf to w.
func Write(w io.Writer, conf map[string]any, opts Options) error {
	src, err := Render(conf, opts)
	if err != nil {
		return err
	}

	_, err = w.Write(src)
	return err
}

// WriteFile renders the declaration of conf into the file at path, creating
// parent directories as needed.
func WriteFile(path string, conf map[string]any, opts Options) error {
	src, err := Render(conf, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create declaration dir: %w", err)
		}
	}

	if err = os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write declaration: %w", err)
	}

	return nil
}

// Render returns the gofmt'ed declaration of conf.
func Render(conf map[string]any, opts Options) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: package %q", ErrInvalidOptions, opts.Package)
	}
	if !token.IsIdentifier(opts.TypeName) || !token.IsExported(opts.TypeName) {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidOptions, opts.TypeName)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by typedconf. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", opts.Package)
	fmt.Fprintf(&buf, "// %s mirrors the resolved configuration tree.\n", opts.TypeName)
	fmt.Fprintf(&buf, "type %s ", opts.TypeName)
	writeStruct(&buf, conf)
	buf.WriteByte('\n')

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format declaration: %w", err)
	}

	return src, nil
}

func writeStruct(buf *bytes.Buffer, m map[string]any) {
	buf.WriteString("struct {\n")

	used := make(map[string]bool, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		name := uniqueName(fieldName(key), used)
		used[name] = true

		buf.WriteString(name)
		buf.WriteByte(' ')
		writeType(buf, m[key])
		fmt.Fprintf(buf, " `json:%s`\n", strconv.Quote(jsonName(key)))
	}

	buf.WriteString("}")
}

func writeType(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case bool:
		buf.WriteString("bool")
	case float64, float32, int, int64, json.Number:
		buf.WriteString("float64")
	case string:
		buf.WriteString("string")
	case []any:
		buf.WriteString("[]")
		if len(val) == 0 {
			buf.WriteString("any")
			return
		}
		writeType(buf, val[0])
	case map[string]any:
		writeStruct(buf, val)
	default:
		buf.WriteString("any")
	}
}

// uniqueName appends the smallest suffix from 2 up that makes name unused.
func uniqueName(name string, used map[string]bool) string {
	if !used[name] {
		return name
	}
	for n := 2; ; n++ {
		if candidate := name + strconv.Itoa(n); !used[candidate] {
			return candidate
		}
	}
}

// jsonName returns the tag name for key. A bare "-" would tell
// encoding/json to skip the field, "-," names it "-".
func jsonName(key string) string {
	if key == "-" {
		return "-,"
	}
	return key
}

// fieldName converts a configuration key to an exported Go identifier:
// "db_host" and "db-host" become "DbHost", "2fa" becomes "X2fa".
func fieldName(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}

	name := b.String()
	switch {
	case name == "":
		return "Field"
	case !token.IsExported(name):
		return "X" + name
	}

	return name
}
