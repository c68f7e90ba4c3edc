// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package workdir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirEnvOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv("FACTSCTL_WORK_DIR", base)

	dir, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, base, dir)
}

func TestForIsStablePerKey(t *testing.T) {
	t.Setenv("FACTSCTL_WORK_DIR", t.TempDir())

	one, err := For("s3://bucket/prefix")
	require.NoError(t, err)
	two, err := For("s3://bucket/prefix")
	require.NoError(t, err)
	other, err := For("s3://bucket/other")
	require.NoError(t, err)

	assert.Equal(t, one, two)
	assert.NotEqual(t, one, other)
	assert.DirExists(t, one)
}

func TestDiscard(t *testing.T) {
	base := t.TempDir()
	t.Setenv("FACTSCTL_WORK_DIR", base)

	dir, err := For("s3://bucket/prefix")
	require.NoError(t, err)

	require.NoError(t, Discard(dir))
	assert.NoDirExists(t, dir)

	// Paths outside the base are refused.
	outside := t.TempDir()
	assert.Error(t, Discard(filepath.Join(outside, "sub")))
}
