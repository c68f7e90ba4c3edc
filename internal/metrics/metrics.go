// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"sort"
	"time"

	"github.com/factsctl/factsctl/internal/log"
)

// Timer accumulates the number of calls and total elapsed time for one named
// operation.
type Timer struct {
	Name     string
	NumCalls int
	Elapsed  time.Duration
}

// Collector receives operation timings. Implementations must be cheap; the
// hot paths call Observe once per operation, not per tuple.
type Collector interface {
	Observe(name string, d time.Duration)
	Snapshot() []Timer
}

// Registry is the standard Collector. Not safe for concurrent use; the tool
// is single-threaded by design.
type Registry struct {
	timers map[string]*Timer
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{timers: make(map[string]*Timer)}
}

// Observe adds one call of duration d to the named timer.
func (r *Registry) Observe(name string, d time.Duration) {
	t, ok := r.timers[name]
	if !ok {
		t = &Timer{Name: name}
		r.timers[name] = t
	}
	t.NumCalls++
	t.Elapsed += d
}

// Snapshot returns the timers ordered by ascending elapsed time.
func (r *Registry) Snapshot() []Timer {
	out := make([]Timer, 0, len(r.timers))
	for _, t := range r.timers {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Elapsed != out[j].Elapsed {
			return out[i].Elapsed < out[j].Elapsed
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Log writes the snapshot at debug level.
func (r *Registry) Log() {
	log.Debug("--- timers ---")
	for _, t := range r.Snapshot() {
		log.Debugf("%s: %s, %d calls", t.Name, t.Elapsed, t.NumCalls)
	}
}

// Nop discards all observations.
type Nop struct{}

// Observe implements Collector.
func (Nop) Observe(string, time.Duration) {}

// Snapshot implements Collector.
func (Nop) Snapshot() []Timer { return nil }
