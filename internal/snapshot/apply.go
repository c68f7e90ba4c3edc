// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/factsctl/factsctl/internal/diff"
	"github.com/factsctl/factsctl/internal/log"
	"github.com/factsctl/factsctl/internal/metrics"
)

// DefaultSuffixes are the extensions recognized as fact files when copying
// untouched relations. Files with other extensions are left alone.
var DefaultSuffixes = []string{".facts", ".txt"}

// options holds optional overrides for Apply.
type options struct {
	collector metrics.Collector
	suffixes  []string
}

// Option customizes an Apply run.
type Option func(*options)

// WithCollector injects a metrics collector. Default is a no-op.
func WithCollector(c metrics.Collector) Option {
	return func(o *options) { o.collector = c }
}

// WithSuffixes overrides the recognized fact-file suffixes.
func WithSuffixes(suffixes []string) Option {
	return func(o *options) { o.suffixes = suffixes }
}

// Apply materializes outputDir from inputDir and the change set. Touched
// relations are rewritten with their delete set filtered out and their insert
// set appended; every other recognized fact file is copied byte-for-byte. A
// touched relation with no backing file under inputDir is skipped silently.
//
// Apply never mutates inputDir. On error the output directory may be
// partially written and should be discarded by the caller; there are no
// retries.
func Apply(ctx context.Context, inputDir, outputDir string, cs *diff.ChangeSet, opts ...Option) (*Report, error) {
	o := options{collector: metrics.Nop{}, suffixes: DefaultSuffixes}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	defer func() { o.collector.Observe("snapshot.apply", time.Since(start)) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	report := NewReport(inputDir, outputDir)

	// Rewrite every relation touched by the diff.
	for _, filename := range cs.Filenames() {
		rr, err := rewriteRelation(inputDir, outputDir, filename, cs)
		if err != nil {
			return nil, err
		}
		report.Add(rr)
	}

	// Copy every untouched fact file byte-for-byte.
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !hasSuffix(entry.Name(), o.suffixes) || cs.Touches(entry.Name()) {
			continue
		}

		n, err := copyFile(
			filepath.Join(inputDir, entry.Name()),
			filepath.Join(outputDir, entry.Name()),
		)
		if err != nil {
			return nil, err
		}
		log.Tracef("copied untouched relation: file=%s size=%s", entry.Name(), humanize.Bytes(uint64(n)))
		report.Add(RelationReport{Filename: entry.Name(), Action: ActionCopied})
	}

	log.Debugf("snapshot applied: in=%s out=%s relations=%d", inputDir, outputDir, len(report.Relations))
	return report, nil
}

// rewriteRelation streams one touched relation from inputDir to outputDir,
// dropping deleted lines and appending inserted tuples afterward. Inserted
// duplicates of surviving lines are preserved.
func rewriteRelation(inputDir, outputDir, filename string, cs *diff.ChangeSet) (RelationReport, error) {
	rr := RelationReport{Filename: filename, Action: ActionModified}

	in, err := os.Open(filepath.Join(inputDir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// A diff may reference a relation with no prior facts.
			log.Debugf("relation file doesn't exist, skipping: file=%s", filename)
			rr.Action = ActionSkipped
			return rr, nil
		}
		return rr, fmt.Errorf("failed to open relation %s: %w", filename, err)
	}
	defer in.Close() //nolint:errcheck

	out, err := os.Create(filepath.Join(outputDir, filename))
	if err != nil {
		return rr, fmt.Errorf("failed to create relation %s: %w", filename, err)
	}

	deletes := cs.Deletes[filename]
	w := bufio.NewWriter(out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if deletes.ContainsLine(strings.TrimRight(line, " \t\r")) {
			rr.Deleted++
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			out.Close() //nolint:errcheck,gosec
			return rr, fmt.Errorf("failed to write relation %s: %w", filename, err)
		}
		rr.Kept++
	}
	if err := scanner.Err(); err != nil {
		out.Close() //nolint:errcheck,gosec
		return rr, fmt.Errorf("failed to read relation %s: %w", filename, err)
	}

	for _, t := range cs.Inserts[filename].Tuples() {
		if _, err := fmt.Fprintln(w, t.JoinTab()); err != nil {
			out.Close() //nolint:errcheck,gosec
			return rr, fmt.Errorf("failed to write relation %s: %w", filename, err)
		}
		rr.Inserted++
	}

	if err := w.Flush(); err != nil {
		out.Close() //nolint:errcheck,gosec
		return rr, fmt.Errorf("failed to flush relation %s: %w", filename, err)
	}
	if err := out.Close(); err != nil {
		return rr, fmt.Errorf("failed to close relation %s: %w", filename, err)
	}

	return rr, nil
}

// copyFile copies src to dst byte-for-byte and returns the copied size.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close() //nolint:errcheck

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close() //nolint:errcheck,gosec
		return n, fmt.Errorf("failed to copy %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return n, fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return n, nil
}

// hasSuffix reports whether name ends in one of the recognized suffixes.
func hasSuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
