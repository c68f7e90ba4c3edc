// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFile points FACTSCTL_CFG_FILE at a temp YAML document and reloads
// the global Config.
func withConfigFile(t *testing.T, content string, namespace ...string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "factsctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("FACTSCTL_CFG_FILE", path)

	_, err := Load(namespace...)
	require.NoError(t, err)

	t.Cleanup(func() { Config = Type{} })
}

func TestGetString(t *testing.T) {
	withConfigFile(t, `
decl: computation.dl
apply:
  out: out_facts
`)

	got, err := GetString("decl")
	require.NoError(t, err)
	assert.Equal(t, "computation.dl", got)

	got, err = GetString("apply.out")
	require.NoError(t, err)
	assert.Equal(t, "out_facts", got)

	got, err = GetString("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	_, err = GetString("missing")
	assert.Error(t, err)
}

func TestGetStringNamespacePreferred(t *testing.T) {
	withConfigFile(t, `
out: global_out
apply:
  out: apply_out
`, "apply")

	got, err := GetString("out")
	require.NoError(t, err)
	assert.Equal(t, "apply_out", got)
}

func TestGetInt(t *testing.T) {
	withConfigFile(t, `
limit: 42
`)

	got, err := GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = GetInt("missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = GetInt("limit.nested")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	withConfigFile(t, `
suffixes:
  - .facts
  - .txt
`)

	got, err := GetStringSlice("suffixes")
	require.NoError(t, err)
	assert.Equal(t, []string{".facts", ".txt"}, got)

	got, err = GetStringSlice("missing", []string{".csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{".csv"}, got)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("FACTSCTL_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
}
