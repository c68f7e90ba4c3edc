// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes and renders differences between two fact-file
// snapshots, either as a human-readable diff or as a replayable change log.
package differ
