// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc

// Package command builds the factsctl CLI: the urfave/cli/v3 app and
// the apply, check, ls, and diff subcommands.
package command
