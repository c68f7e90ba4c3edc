// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistryObserve(t *testing.T) {
	r := NewRegistry()

	r.Observe("apply", 2*time.Second)
	r.Observe("apply", 1*time.Second)
	r.Observe("check", 500*time.Millisecond)

	snap := r.Snapshot()
	assert.Len(t, snap, 2)

	// Ordered by ascending elapsed time.
	assert.Equal(t, "check", snap[0].Name)
	assert.Equal(t, 1, snap[0].NumCalls)
	assert.Equal(t, "apply", snap[1].Name)
	assert.Equal(t, 2, snap[1].NumCalls)
	assert.Equal(t, 3*time.Second, snap[1].Elapsed)
}

func TestNop(t *testing.T) {
	var c Collector = Nop{}
	c.Observe("anything", time.Second)
	assert.Nil(t, c.Snapshot())
}
