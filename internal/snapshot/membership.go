// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/factsctl/factsctl/internal/metrics"
	"github.com/factsctl/factsctl/internal/tuple"
)

// AllPresent streams the fact file once and reports whether every candidate
// tuple was observed. Only the candidate and found sets are held in memory.
// An empty candidate set is vacuously present.
func AllPresent(path string, want *tuple.Set, opts ...Option) (bool, error) {
	o := options{collector: metrics.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	defer func() { o.collector.Observe("snapshot.allPresent", time.Since(start)) }()

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open fact file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	found := tuple.NewSet()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t := tuple.SplitTab(strings.TrimRight(scanner.Text(), " \t\r"))
		if want.Contains(t) {
			found.Add(t)
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read fact file: %w", err)
	}

	return found.Len() == want.Len(), nil
}

// Load reads a whole relation file into a tuple set. Blank lines are skipped,
// duplicates collapse.
func Load(path string) (*tuple.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fact file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	set := tuple.NewSet()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		set.Add(tuple.SplitTab(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fact file: %w", err)
	}

	return set, nil
}
