// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tuple encodes and decodes relation tuples between the engine's
// literal notation and the tab-separated on-disk fact format, and provides a
// field-equality based tuple set.
package tuple
