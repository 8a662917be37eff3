// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package declaration

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opts = Options{Package: "conf", TypeName: "Conf"}

func TestRender_Shapes(t *testing.T) {
	conf := map[string]any{
		"name":    "svc",
		"debug":   true,
		"port":    float64(8080),
		"nothing": nil,
		"hosts":   []any{"a", "b"},
		"empty":   []any{},
		"db": map[string]any{
			"user_name": "admin",
			"pool":      map[string]any{"max-size": float64(10)},
		},
		"replicas": []any{map[string]any{"addr": "r1"}},
	}

	src, err := Render(conf, opts)
	require.NoError(t, err)

	want := "// Code generated by typedconf. DO NOT EDIT.\n" +
		"\n" +
		"package conf\n" +
		"\n" +
		"// Conf mirrors the resolved configuration tree.\n" +
		"type Conf struct {\n" +
		"\tDb struct {\n" +
		"\t\tPool struct {\n" +
		"\t\t\tMaxSize float64 `json:\"max-size\"`\n" +
		"\t\t} `json:\"pool\"`\n" +
		"\t\tUserName string `json:\"user_name\"`\n" +
		"\t} `json:\"db\"`\n" +
		"\tDebug    bool     `json:\"debug\"`\n" +
		"\tEmpty    []any    `json:\"empty\"`\n" +
		"\tHosts    []string `json:\"hosts\"`\n" +
		"\tName     string   `json:\"name\"`\n" +
		"\tNothing  any      `json:\"nothing\"`\n" +
		"\tPort     float64  `json:\"port\"`\n" +
		"\tReplicas []struct {\n" +
		"\t\tAddr string `json:\"addr\"`\n" +
		"\t} `json:\"replicas\"`\n" +
		"}\n"

	assert.Equal(t, squash(want), squash(string(src)))
	assert.True(t, strings.HasSuffix(string(src), "}\n"))
}

// squash collapses runs of blanks so comparisons ignore gofmt column
// alignment.
func squash(s string) string {
	return blanks.ReplaceAllString(s, " ")
}

var blanks = regexp.MustCompile(`[ \t]+`)

func TestRender_Stable(t *testing.T) {
	conf := map[string]any{"b": 1.0, "a": "x", "c": map[string]any{"z": true, "y": false}}

	first, err := Render(conf, opts)
	require.NoError(t, err)
	for range 10 {
		again, err := Render(conf, opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_InvalidOptions(t *testing.T) {
	tests := []Options{
		{Package: "", TypeName: "Conf"},
		{Package: "my-conf", TypeName: "Conf"},
		{Package: "conf", TypeName: "conf"},
		{Package: "conf", TypeName: ""},
	}

	for _, o := range tests {
		_, err := Render(map[string]any{}, o)
		assert.ErrorIs(t, err, ErrInvalidOptions, "%+v", o)
	}
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"host":       "Host",
		"db_host":    "DbHost",
		"max-size":   "MaxSize",
		"already.Up": "AlreadyUp",
		"2fa":        "X2fa",
		"[literal]":  "Literal",
		"$$":         "Field",
	}

	for key, want := range tests {
		assert.Equal(t, want, fieldName(key), key)
	}
}

func TestRender_CollidingFieldNames(t *testing.T) {
	src, err := Render(map[string]any{"db_host": "a", "db-host": "b"}, opts)
	require.NoError(t, err)
	assert.Contains(t, squash(string(src)), "DbHost string `json:\"db-host\"`")
	assert.Contains(t, squash(string(src)), "DbHost2 string `json:\"db_host\"`")
}

func TestRender_SuffixSkipsTakenNames(t *testing.T) {
	src, err := Render(map[string]any{"db-host": "a", "db_host": "b", "db_host2": "c"}, opts)
	require.NoError(t, err)

	out := squash(string(src))
	assert.Contains(t, out, "DbHost string `json:\"db-host\"`")
	assert.Contains(t, out, "DbHost2 string `json:\"db_host\"`")
	assert.Contains(t, out, "DbHost22 string `json:\"db_host2\"`")

	file, err := parser.ParseFile(token.NewFileSet(), "conf.go", src, 0)
	require.NoError(t, err)

	seen := map[string]bool{}
	ast.Inspect(file, func(n ast.Node) bool {
		if f, ok := n.(*ast.Field); ok {
			for _, name := range f.Names {
				assert.False(t, seen[name.Name], "duplicate field %s", name.Name)
				seen[name.Name] = true
			}
		}
		return true
	})
	assert.Len(t, seen, 3)
}

func TestRender_DashKey(t *testing.T) {
	src, err := Render(map[string]any{"-": "x"}, opts)
	require.NoError(t, err)
	assert.Contains(t, squash(string(src)), "Field string `json:\"-,\"`")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]any{"a": "b"}, opts))
	assert.Contains(t, squash(buf.String()), "A string `json:\"a\"`")
}

func TestWriteFile_CreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "conf.gen.go")

	require.NoError(t, WriteFile(path, map[string]any{"a": "b"}, opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package conf")
}
