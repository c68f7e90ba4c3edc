// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/differ"
	"github.com/factsctl/factsctl/internal/meta"
	"github.com/factsctl/factsctl/internal/store"
)

// diffCommandAction is the action handler for the "diff" subcommand. It
// compares two snapshots and renders the difference, either as a readable
// diff or as a replayable diff file with --replay.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("diff requires two snapshots (directory or s3://bucket/prefix)")
	}

	var dirs [2]string
	for i, ref := range args {
		dir, err := store.Resolve(ctx, ref, AWSOptions(cmd)...)
		if err != nil {
			return err
		}
		dirs[i] = dir
	}

	mapping, err := LoadMapping(cmd)
	if err != nil {
		return err
	}

	// --replay emits the difference as a diff file that apply understands.
	if cmd.Bool("replay") {
		entries, err := differ.Entries(dirs[0], dirs[1], mapping)
		if err != nil {
			return err
		}
		for _, line := range entries {
			fmt.Fprintln(os.Stdout, line)
		}
		return nil
	}

	var docs [2][]byte
	for i, dir := range dirs {
		doc, err := differ.BuildDoc(dir, mapping)
		if err != nil {
			return err
		}
		docs[i] = doc
	}

	return differ.Diff(ctx, cmd, docs, os.Stdout)
}

// diffCommandBuilder constructs the cli.Command for "diff".
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two snapshots",
		UsageText: "factsctl diff <snapshotA> <snapshotB> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			declFlag,
			&cli.StringFlag{
				Name:  "ignore",
				Usage: "comma-separated list of relations to ignore",
			},
			&cli.BoolFlag{
				Name:  "replay",
				Usage: "emit the difference as a replayable diff file",
				Value: false,
			},
			NewProfileFlag(),
			NewRegionFlag(),
		}, NewGlobalFlags()...),
		Action: diffCommandAction,
	}
}
