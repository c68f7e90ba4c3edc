// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/factsctl/factsctl/internal/decl"
	"github.com/factsctl/factsctl/internal/log"
	"github.com/factsctl/factsctl/internal/tuple"
)

// Sentinel terminates a diff. Lines after it are never read, even if
// malformed.
const Sentinel = "commit"

// ErrMalformedLine reports a diff line that is not "<insert|remove> <tuple>".
var ErrMalformedLine = errors.New("malformed diff line")

// Op is the kind of a change entry.
type Op string

const (
	// OpInsert adds a tuple to its relation.
	OpInsert Op = "insert"
	// OpRemove deletes a tuple from its relation.
	OpRemove Op = "remove"
)

// Entry is one parsed diff line: an operation against a single tuple of a
// named relation.
type Entry struct {
	Op       Op
	Relation string
	Tuple    tuple.Tuple
}

// ParseEntry parses one non-sentinel diff line. The line is split on the
// first space into a command token and a tuple literal.
func ParseEntry(line string) (Entry, error) {
	command, lit, found := strings.Cut(line, " ")
	if !found {
		return Entry{}, fmt.Errorf("%w: no space separator in %q", ErrMalformedLine, line)
	}

	var op Op
	switch command {
	case string(OpInsert):
		op = OpInsert
	case string(OpRemove):
		op = OpRemove
	default:
		return Entry{}, fmt.Errorf("%w: unknown command %q", ErrMalformedLine, command)
	}

	relName, tup, err := tuple.Decode(lit)
	if err != nil {
		return Entry{}, err
	}

	return Entry{Op: op, Relation: relName, Tuple: tup}, nil
}

// ChangeSet is a diff grouped per resolved fact filename. A tuple may appear
// in both sets for the same file; the materializer applies deletes to the
// original lines first and appends inserts afterward, so the net effect is
// presence.
type ChangeSet struct {
	Inserts map[string]*tuple.Set
	Deletes map[string]*tuple.Set
}

// NewChangeSet constructs an empty ChangeSet.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		Inserts: make(map[string]*tuple.Set),
		Deletes: make(map[string]*tuple.Set),
	}
}

// Read consumes diff lines from r up to the first Sentinel line and groups
// each entry by the filename its relation resolves to via mapping (falling
// back to <name>.facts). The first malformed line aborts the read.
func Read(r io.Reader, mapping *decl.Mapping) (*ChangeSet, error) {
	cs := NewChangeSet()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r\n")

		if line == Sentinel {
			log.Debugf("commit reached: files=%d", len(cs.Filenames()))
			return cs, nil
		}

		entry, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}

		cs.Record(entry, mapping)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read diff: %w", err)
	}

	return cs, nil
}

// ReadLines is Read over an in-memory slice of diff lines.
func ReadLines(lines []string, mapping *decl.Mapping) (*ChangeSet, error) {
	return Read(strings.NewReader(strings.Join(lines, "\n")), mapping)
}

// Record adds one entry to the appropriate per-file set.
func (cs *ChangeSet) Record(e Entry, mapping *decl.Mapping) {
	filename := mapping.FilenameFor(e.Relation)

	target := cs.Inserts
	if e.Op == OpRemove {
		target = cs.Deletes
	}

	set, ok := target[filename]
	if !ok {
		set = tuple.NewSet()
		target[filename] = set
	}
	set.Add(e.Tuple)
}

// Filenames returns the sorted union of filenames touched by either set.
func (cs *ChangeSet) Filenames() []string {
	seen := make(map[string]struct{}, len(cs.Inserts)+len(cs.Deletes))
	for f := range cs.Inserts {
		seen[f] = struct{}{}
	}
	for f := range cs.Deletes {
		seen[f] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Restrict returns a new ChangeSet holding only the changes for the
// given filenames.
func (cs *ChangeSet) Restrict(filenames []string) *ChangeSet {
	out := NewChangeSet()
	for _, f := range filenames {
		if set, ok := cs.Inserts[f]; ok {
			out.Inserts[f] = set
		}
		if set, ok := cs.Deletes[f]; ok {
			out.Deletes[f] = set
		}
	}
	return out
}

// Touches reports whether the filename appears in either set.
func (cs *ChangeSet) Touches(filename string) bool {
	if _, ok := cs.Inserts[filename]; ok {
		return true
	}
	_, ok := cs.Deletes[filename]
	return ok
}

// Empty reports whether the change set carries no entries.
func (cs *ChangeSet) Empty() bool {
	return len(cs.Inserts) == 0 && len(cs.Deletes) == 0
}
