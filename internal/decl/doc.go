// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package decl extracts the relation-name to fact-filename mapping from an
// engine declaration file. It is a narrow single-pattern line matcher, not a
// parser for the declaration language.
package decl
