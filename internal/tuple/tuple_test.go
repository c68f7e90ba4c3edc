// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		relName string
		tuple   Tuple
		want    string
	}{
		{
			name:    "two_fields",
			relName: "edge",
			tuple:   New("1", "2"),
			want:    `edge("1", "2")`,
		},
		{
			name:    "single_field",
			relName: "node",
			tuple:   New("a"),
			want:    `node("a")`,
		},
		{
			name:    "numeric_fields_quoted_anyway",
			relName: "weight",
			tuple:   New("3", "14"),
			want:    `weight("3", "14")`,
		},
		{
			name:    "empty_field",
			relName: "rel",
			tuple:   New(""),
			want:    `rel("")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.relName, tt.tuple))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantRel string
		wantTup Tuple
		wantErr bool
	}{
		{
			name:    "quoted_fields",
			line:    `edge("1", "2")`,
			wantRel: "edge",
			wantTup: New("1", "2"),
		},
		{
			name:    "unquoted_fields_pass_through",
			line:    `weight(3, 14)`,
			wantRel: "weight",
			wantTup: New("3", "14"),
		},
		{
			name:    "mixed_fields",
			line:    `attr("name", 42)`,
			wantRel: "attr",
			wantTup: New("name", "42"),
		},
		{
			name:    "nested_parens_in_field",
			line:    `call("f(x)", "g")`,
			wantRel: "call",
			wantTup: New("f(x", "g"),
		},
		{
			name:    "missing_paren",
			line:    `edge "1", "2"`,
			wantErr: true,
		},
		{
			name:    "empty_line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, tup, err := Decode(tt.line)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedTuple)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRel, rel)
			assert.Equal(t, tt.wantTup, tup)
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		relName string
		tuple   Tuple
	}{
		{name: "simple", relName: "edge", tuple: New("1", "2")},
		{name: "words", relName: "path", tuple: New("src", "dst", "len")},
		{name: "spaces_in_field", relName: "label", tuple: New("a b", "c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, tup, err := Decode(Encode(tt.relName, tt.tuple))
			require.NoError(t, err)
			assert.Equal(t, tt.relName, rel)
			assert.Equal(t, tt.tuple, tup)
		})
	}
}

func TestJoinSplitTab(t *testing.T) {
	tup := New("1", "2", "3")
	assert.Equal(t, "1\t2\t3", tup.JoinTab())
	assert.Equal(t, tup, SplitTab("1\t2\t3"))
}

func TestEqual(t *testing.T) {
	assert.True(t, New("a", "b").Equal(New("a", "b")))
	assert.False(t, New("a", "b").Equal(New("a")))
	assert.False(t, New("a", "b").Equal(New("a", "c")))
}
