// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tuple

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a set of Tuples with field-sequence equality. Members are keyed by a
// canonical quoted form rather than the raw tab join, so a field that itself
// contains a tab cannot collide with a neighboring field.
type Set struct {
	members map[string]Tuple
}

// NewSet constructs a Set holding the given tuples.
func NewSet(tuples ...Tuple) *Set {
	s := &Set{members: make(map[string]Tuple, len(tuples))}
	for _, t := range tuples {
		s.Add(t)
	}
	return s
}

// key builds the canonical membership key. strconv.Quote escapes embedded
// tabs, so the joined form is unambiguous.
func key(t Tuple) string {
	quoted := make([]string, len(t))
	for i, f := range t {
		quoted[i] = strconv.Quote(f)
	}
	return strings.Join(quoted, "\t")
}

// Add inserts a tuple. Duplicates collapse.
func (s *Set) Add(t Tuple) {
	s.members[key(t)] = t
}

// Contains reports whether the tuple is a member. A nil Set contains nothing.
func (s *Set) Contains(t Tuple) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[key(t)]
	return ok
}

// ContainsLine reports whether the tab-split form of a fact-file line is a
// member.
func (s *Set) ContainsLine(line string) bool {
	return s.Contains(SplitTab(line))
}

// Len returns the member count.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Tuples returns the members in a deterministic (key-sorted) order.
func (s *Set) Tuples() []Tuple {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.members))
	for k := range s.members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Tuple, len(keys))
	for i, k := range keys {
		out[i] = s.members[k]
	}
	return out
}
