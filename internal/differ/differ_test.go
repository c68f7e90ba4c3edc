// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/factsctl/factsctl/internal/decl"
)

var ctx = context.Background()

func newDiffCommand() *cli.Command {
	return &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ignore"},
			&cli.BoolFlag{Name: "color"},
		},
	}
}

func writeSnapshot(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	return dir
}

func TestBuildDoc(t *testing.T) {
	dir := writeSnapshot(t, map[string]string{
		"edge.facts": "3\t4\n1\t2\n",
		"notes.txt":  "not a relation\n",
	})

	doc, err := BuildDoc(dir, decl.NewMapping())
	require.NoError(t, err)

	parsed := gjson.ParseBytes(doc)
	edges := parsed.Get("edge").Array()
	require.Len(t, edges, 2)
	// Lines are sorted for stable comparison.
	assert.Equal(t, "1\t2", edges[0].String())
	assert.Equal(t, "3\t4", edges[1].String())
	assert.False(t, parsed.Get("notes").Exists())
}

func TestDiffIdentical(t *testing.T) {
	dir := writeSnapshot(t, map[string]string{"edge.facts": "1\t2\n"})

	doc, err := BuildDoc(dir, nil)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, Diff(ctx, newDiffCommand(), [2][]byte{doc, doc}, buf))
	assert.Contains(t, buf.String(), "identical")
}

func TestDiffModified(t *testing.T) {
	a := writeSnapshot(t, map[string]string{"edge.facts": "1\t2\n"})
	b := writeSnapshot(t, map[string]string{"edge.facts": "1\t2\n5\t6\n"})

	docA, err := BuildDoc(a, nil)
	require.NoError(t, err)
	docB, err := BuildDoc(b, nil)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, Diff(ctx, newDiffCommand(), [2][]byte{docA, docB}, buf))
	assert.Contains(t, buf.String(), "5\\t6")
}

func TestEntries(t *testing.T) {
	a := writeSnapshot(t, map[string]string{
		"edge.facts": "1\t2\n3\t4\n",
		"node.facts": "a\n",
	})
	b := writeSnapshot(t, map[string]string{
		"edge.facts":  "3\t4\n5\t6\n",
		"ghost.facts": "x\ty\n",
	})

	lines, err := Entries(a, b, decl.NewMapping())
	require.NoError(t, err)

	assert.Equal(t, []string{
		`remove edge("1", "2")`,
		`insert edge("5", "6")`,
		`insert ghost("x", "y")`,
		`remove node("a")`,
		`commit`,
	}, lines)
}

func TestEntriesIdenticalSnapshotsOnlyCommit(t *testing.T) {
	a := writeSnapshot(t, map[string]string{"edge.facts": "1\t2\n"})
	b := writeSnapshot(t, map[string]string{"edge.facts": "1\t2\n"})

	lines, err := Entries(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"commit"}, lines)
}
