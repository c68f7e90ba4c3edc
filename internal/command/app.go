// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/meta"
	"github.com/factsctl/factsctl/internal/metrics"
)

func InitApp(ctx context.Context, args []string, collector metrics.Collector) (*cli.Command, error) {

	// Save the CWD at startup and then defer restoring it so we're tidy.
	sd, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(sd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore directory: %v\n", err)
		}
	}()

	// The arg immediately following the binary is the factsctl subcommand
	// and also the namespace key used when retrieving config values. It could
	// be -h/--help, so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns) //nolint
	if collector == nil {
		collector = metrics.Nop{}
	}
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Metrics:     collector,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "factsctl",
		Usage: "Facts Control",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "factsctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		applyCommandBuilder(m),
		checkCommandBuilder(m),
		diffCommandBuilder(m),
		lsCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
