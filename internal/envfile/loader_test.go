// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeEnvFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// ── Files ─────────────────────────────────────────────────────────────────────

func TestFiles_Order(t *testing.T) {
	assert.Equal(t, []string{
		".env",
		".env.local",
		".env.development",
		".env.development.local",
	}, Files("development"))
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_NoFiles(t *testing.T) {
	env, err := Load(t.TempDir(), "development", nil)
	require.NoError(t, err)
	assert.Empty(t, env)
}

func TestLoad_LayerPriority(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env", "VITE_API_TARGET=http://base:1\nONLY_BASE=base\n")
	writeEnvFile(t, dir, ".env.local", "VITE_API_TARGET=http://local:2\n")
	writeEnvFile(t, dir, ".env.development", "VITE_API_TARGET=http://mode:3\nONLY_MODE=mode\n")
	writeEnvFile(t, dir, ".env.development.local", "VITE_API_TARGET=http://mode-local:4\n")

	env, err := Load(dir, "development", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://mode-local:4", env["VITE_API_TARGET"])
	assert.Equal(t, "base", env["ONLY_BASE"])
	assert.Equal(t, "mode", env["ONLY_MODE"])
}

func TestLoad_OtherModeIgnored(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env.production", "VITE_API_TARGET=http://prod:1\n")

	env, err := Load(dir, "development", nil)
	require.NoError(t, err)
	assert.NotContains(t, env, "VITE_API_TARGET")
}

func TestLoad_ProcessEnvWins(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env.development", "VITE_API_TARGET=http://file:1\n")

	env, err := Load(dir, "development", map[string]string{"VITE_API_TARGET": "http://process:2"})
	require.NoError(t, err)
	assert.Equal(t, "http://process:2", env["VITE_API_TARGET"])
}

func TestLoad_ExpandsReferences(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env", "GATEWAY_HOST=gateway\nVITE_API_TARGET=http://${GATEWAY_HOST}:8080\n")

	env, err := Load(dir, "development", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://gateway:8080", env["VITE_API_TARGET"])
}

func TestLoad_UnreadableFileIsError(t *testing.T) {
	dir := t.TempDir()
	// a directory in place of a file cannot be parsed
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))

	_, err := Load(dir, "development", nil)
	assert.Error(t, err)
}

// ── ProcessEnv ────────────────────────────────────────────────────────────────

func TestProcessEnv_Snapshot(t *testing.T) {
	t.Setenv("DEVPROXY_TEST_VAR", "a=b")

	snapshot := ProcessEnv()
	assert.Equal(t, "a=b", snapshot["DEVPROXY_TEST_VAR"])
}
