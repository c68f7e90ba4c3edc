// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package metrics provides an injectable collector for call counts and
// durations. There is no process-wide registry; callers construct one and
// pass it where they want instrumentation.
package metrics
