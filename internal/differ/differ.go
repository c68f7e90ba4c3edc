// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/factsctl/factsctl/internal/decl"
	"github.com/factsctl/factsctl/internal/diff"
	"github.com/factsctl/factsctl/internal/snapshot"
	"github.com/factsctl/factsctl/internal/tuple"
)

// BuildDoc loads every recognized fact file under dir into a JSON document of
// the shape {"relation": ["line", ...]} with sorted lines, suitable for
// structural comparison. The mapping translates filenames back to logical
// relation names.
func BuildDoc(dir string, mapping *decl.Mapping) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot dir: %w", err)
	}

	doc := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), decl.FactSuffix) {
			continue
		}

		set, err := snapshot.Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		lines := make([]string, 0, set.Len())
		for _, t := range set.Tuples() {
			lines = append(lines, t.JoinTab())
		}
		sort.Strings(lines)

		doc[mapping.RelationFor(entry.Name())] = lines
	}

	return json.Marshal(doc)
}

// Diff compares two snapshot documents and renders the result to w.
func Diff(ctx context.Context, cmd *cli.Command, docs [2][]byte, w io.Writer) error {
	log.Debugf(">> differ()")

	if w == nil {
		w = os.Stdout
	}

	differ := gojsondiff.New()

	delta, err := differ.Compare(docs[0], docs[1])
	if err != nil {
		return fmt.Errorf("failed to compare snapshots: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The snapshots are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(docs[0], &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot doc: %w", err)
	}

	// --ignore drops whole relations from the rendering.
	for key := range strings.SplitSeq(cmd.String("ignore"), ",") {
		if key != "" {
			delete(jdoc, key)
		}
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       cmd.Bool("color"),
	}

	formatter := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := formatter.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}

// Entries derives the replayable change log that transforms snapshot a into
// snapshot b: a remove entry per tuple present only in a, an insert entry per
// tuple present only in b, terminated by the commit sentinel. Relations are
// compared pairwise by filename.
func Entries(a, b string, mapping *decl.Mapping) ([]string, error) {
	relations := make(map[string]struct{})
	for _, dir := range []string{a, b} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot dir: %w", err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), decl.FactSuffix) {
				relations[entry.Name()] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		before, err := loadOrEmpty(filepath.Join(a, name))
		if err != nil {
			return nil, err
		}
		after, err := loadOrEmpty(filepath.Join(b, name))
		if err != nil {
			return nil, err
		}

		relName := mapping.RelationFor(name)
		for _, t := range before.Tuples() {
			if !after.Contains(t) {
				lines = append(lines, string(diff.OpRemove)+" "+tuple.Encode(relName, t))
			}
		}
		for _, t := range after.Tuples() {
			if !before.Contains(t) {
				lines = append(lines, string(diff.OpInsert)+" "+tuple.Encode(relName, t))
			}
		}
	}

	return append(lines, diff.Sentinel), nil
}

// loadOrEmpty loads a relation file, treating a missing file as an empty
// relation.
func loadOrEmpty(path string) (*tuple.Set, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return tuple.NewSet(), nil
		}
		return nil, err
	}
	return snapshot.Load(path)
}
