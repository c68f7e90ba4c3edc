// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package snapshot materializes a new fact-file directory from an input
// directory and a change set, and provides read-only utilities over the same
// on-disk format. The input directory is never mutated.
package snapshot
