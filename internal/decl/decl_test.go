// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package decl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRels  map[string]string
		wantFiles map[string]string
	}{
		{
			name: "single_declaration",
			input: `.input edge(IO=file, filename="edge.facts", delimiter="\t")
`,
			wantRels:  map[string]string{"edge": "edge.facts"},
			wantFiles: map[string]string{"edge.facts": "edge"},
		},
		{
			name: "declaration_without_filename_ignored",
			input: `.input edge(IO=file)
.input node(IO=file, filename="vertices.facts")
`,
			wantRels:  map[string]string{"node": "vertices.facts"},
			wantFiles: map[string]string{"vertices.facts": "node"},
		},
		{
			name: "non_input_lines_ignored",
			input: `.decl edge(x: symbol, y: symbol)
.output reachable
edge("1", "2").
.input edge(filename="edge.facts")
`,
			wantRels:  map[string]string{"edge": "edge.facts"},
			wantFiles: map[string]string{"edge.facts": "edge"},
		},
		{
			name:      "empty_input",
			input:     "",
			wantRels:  map[string]string{},
			wantFiles: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseReader(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantRels), m.Len())
			for rel, file := range tt.wantRels {
				assert.Equal(t, file, m.FilenameFor(rel))
			}
			for file, rel := range tt.wantFiles {
				assert.Equal(t, rel, m.RelationFor(file))
			}
		})
	}
}

func TestMappingFallbacks(t *testing.T) {
	m := NewMapping()

	assert.Equal(t, "ghost.facts", m.FilenameFor("ghost"))
	assert.Equal(t, "ghost", m.RelationFor("ghost.facts"))

	// Nil mapping uses fallbacks too.
	var nilMapping *Mapping
	assert.Equal(t, "edge.facts", nilMapping.FilenameFor("edge"))
	assert.Equal(t, 0, nilMapping.Len())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "computation.dl")
	content := `.input edge(IO=file, filename="edge.facts", delimiter="\t")
.input weight(IO=file, filename="w.facts")
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	m, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "w.facts", m.FilenameFor("weight"))

	_, err = Parse(filepath.Join(dir, "missing.dl"))
	assert.Error(t, err)
}
