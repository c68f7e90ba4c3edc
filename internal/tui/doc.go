// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc

// Package tui provides the interactive relation picker used by
// apply --select.
package tui
