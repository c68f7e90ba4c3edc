// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package decl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/factsctl/factsctl/internal/log"
)

// FactSuffix is the default extension for a relation's backing file, used
// whenever the declaration file carries no explicit filename attribute.
const FactSuffix = ".facts"

// inputPattern matches an input declaration that names its backing file, e.g.
//
//	.input edge(IO=file, filename="edge.facts", delimiter="\t")
//
// Group 1 is the relation name, group 2 the filename. Any other attributes
// are ignored; lines that do not match are skipped entirely.
var inputPattern = regexp.MustCompile(`^\.input (\w+)\(.*filename="([a-zA-Z0-9_.]+)".*\)\s*`)

// Mapping is the bidirectional association between logical relation names and
// their on-disk fact filenames. The two directions are inverses whenever every
// relation declares a unique filename.
type Mapping struct {
	filenameToRelation map[string]string
	relationToFilename map[string]string
}

// NewMapping returns an empty Mapping. FilenameFor and RelationFor fall back
// to the <name>.facts convention.
func NewMapping() *Mapping {
	return &Mapping{
		filenameToRelation: make(map[string]string),
		relationToFilename: make(map[string]string),
	}
}

// Parse reads the declaration file at path and builds the Mapping.
func Parse(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declaration file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return ParseReader(f)
}

// ParseReader scans declaration lines from r. For each line matching
// inputPattern the association is recorded both ways.
func ParseReader(r io.Reader) (*Mapping, error) {
	m := NewMapping()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		match := inputPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		relName, fileName := match[1], match[2]
		log.Tracef("input declaration matched: rel=%s file=%s", relName, fileName)

		m.filenameToRelation[fileName] = relName
		m.relationToFilename[relName] = fileName
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan declaration file: %w", err)
	}

	log.Debugf("mapping built: relations=%d", len(m.relationToFilename))
	return m, nil
}

// FilenameFor resolves a logical relation name to its backing filename,
// falling back to <name>.facts when the relation was never declared with an
// explicit filename.
func (m *Mapping) FilenameFor(relName string) string {
	if m != nil {
		if f, ok := m.relationToFilename[relName]; ok {
			return f
		}
	}
	return relName + FactSuffix
}

// RelationFor resolves a fact filename back to its logical relation name,
// falling back to the filename with its extension trimmed.
func (m *Mapping) RelationFor(fileName string) string {
	if m != nil {
		if r, ok := m.filenameToRelation[fileName]; ok {
			return r
		}
	}
	return strings.TrimSuffix(fileName, FactSuffix)
}

// Len returns the number of declared relations.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.relationToFilename)
}
