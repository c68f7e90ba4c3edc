// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff reads a commit-delimited change log of insert/remove tuple
// operations and groups it into per-file insert and delete sets.
package diff
