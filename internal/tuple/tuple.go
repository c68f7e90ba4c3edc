// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tuple

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTuple reports a tuple literal that is not of the shape
// name("f1", "f2", ...).
var ErrMalformedTuple = errors.New("malformed tuple literal")

// Tuple is an ordered sequence of string fields representing one fact. There
// is no type distinction between numeric and string fields at this layer.
// Treat a Tuple as immutable once constructed.
type Tuple []string

// New constructs a Tuple from its fields.
func New(fields ...string) Tuple {
	return Tuple(fields)
}

// Equal reports whether two tuples have identical field sequences.
func (t Tuple) Equal(other Tuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i, f := range t {
		if other[i] != f {
			return false
		}
	}
	return true
}

// JoinTab renders the tuple in the on-disk fact format: fields joined by a
// single tab. Fields containing tabs or newlines corrupt the representation;
// the format has no escaping.
func (t Tuple) JoinTab() string {
	return strings.Join(t, "\t")
}

// SplitTab parses one fact-file line into a Tuple.
func SplitTab(line string) Tuple {
	return Tuple(strings.Split(line, "\t"))
}

// Encode renders the engine literal for a tuple, e.g. edge("1", "2"). Every
// field is quoted unconditionally.
func Encode(relName string, t Tuple) string {
	quoted := make([]string, len(t))
	for i, f := range t {
		quoted[i] = `"` + f + `"`
	}
	return fmt.Sprintf("%s(%s)", relName, strings.Join(quoted, ", "))
}

// Decode parses an engine tuple literal into its relation name and Tuple.
// The literal is split on the first "(", the trailing ")" stripped, and the
// remainder split on `", "` boundaries. A surrounding quote pair is stripped
// per field when present; unquoted fields (numbers) pass through verbatim.
func Decode(line string) (string, Tuple, error) {
	name, rest, found := strings.Cut(line, "(")
	if !found {
		return "", nil, fmt.Errorf("%w: missing '(' in %q", ErrMalformedTuple, line)
	}

	rest = strings.TrimRight(rest, ")")

	parts := strings.Split(rest, ", ")
	fields := make(Tuple, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && strings.HasPrefix(p, `"`) && strings.HasSuffix(p, `"`) {
			p = strings.TrimSpace(p[1 : len(p)-1])
		}
		fields[i] = p
	}

	return name, fields, nil
}
