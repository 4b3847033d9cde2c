package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csgen/internal/check"
)

const testRequest = `
classes:
  - name: Spawner
    namespace: Game
    methods:
      - name: Spawn
        static: true
        body: Instantiate(prefab);
enums:
  - name: Team
    namespace: Game
    members: [Red, Blue]
`

const testModels = `package models

// Order is a customer order.
type Order struct {
	ID    string  ` + "`json:\"id\"`" + `
	Total float64 ` + "`json:\"total\"`" + `
}

type internalState struct {
	N int
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Generate(t *testing.T) {
	dir := t.TempDir()
	req := writeFile(t, dir, "request.yaml", testRequest)
	out := filepath.Join(dir, "out")

	require.NoError(t, run([]string{"generate", "-r", req, "-o", out, "--check"}))

	data, err := os.ReadFile(filepath.Join(out, "Spawner.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "internal class Spawner")
	assert.Contains(t, string(data), "public static void Spawn()")

	data, err = os.ReadFile(filepath.Join(out, "Team.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Red, Blue")
}

func TestRun_GenerateWithConfig(t *testing.T) {
	dir := t.TempDir()
	req := writeFile(t, dir, "request.yaml", testRequest)
	cfg := writeFile(t, dir, "csgen.toml", `
[options]
access = "public"
outputDir = "`+filepath.ToSlash(filepath.Join(dir, "configured"))+`"
usings = ["UnityEngine"]
`)

	require.NoError(t, run([]string{"generate", "-c", cfg, "-r", req}))

	data, err := os.ReadFile(filepath.Join(dir, "configured", "Spawner.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "using UnityEngine;")
	assert.Contains(t, string(data), "public class Spawner")
}

func TestRun_GenerateRequiresRequest(t *testing.T) {
	err := run([]string{"generate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request file is required")
}

func TestRun_Import(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "models.go", testModels)
	out := filepath.Join(dir, "out")

	require.NoError(t, run([]string{"import", "-i", input, "-o", out, "--namespace", "Shop"}))

	data, err := os.ReadFile(filepath.Join(out, "Order.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "namespace Shop")
	assert.Contains(t, string(data), "class Order")
	assert.Contains(t, string(data), "double Total;")

	_, err = os.Stat(filepath.Join(out, "internalState.cs"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "Good.cs", "internal class Good\n{\n}\n")
	bad := writeFile(t, dir, "Bad.cs", "internal class Bad\n{\n    void M( {\n}\n")

	require.NoError(t, run([]string{"check", good}))

	err := run([]string{"check", good, bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, check.ErrSyntax))
}

func TestRun_UnknownCommand(t *testing.T) {
	require.Error(t, run([]string{"frobnicate"}))
}

func TestParseCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"User", "Order", "Product"}, parseCommaSeparated("User, Order ,,Product"))
	assert.Empty(t, parseCommaSeparated(""))
}
