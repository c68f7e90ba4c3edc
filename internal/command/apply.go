// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/factsctl/factsctl/internal/aws"
	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/diff"
	"github.com/factsctl/factsctl/internal/meta"
	"github.com/factsctl/factsctl/internal/output"
	"github.com/factsctl/factsctl/internal/snapshot"
	"github.com/factsctl/factsctl/internal/store"
	"github.com/factsctl/factsctl/internal/tui"
	"github.com/factsctl/factsctl/internal/workdir"
)

// applyCommandAction is the action handler for the "apply" subcommand. It
// resolves the input snapshot, reads the diff up to its commit line,
// optionally narrows it interactively, and materializes the output snapshot.
func applyCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "apply"

	ref := cmd.Args().First()
	if ref == "" {
		return fmt.Errorf("apply requires an input snapshot (directory or s3://bucket/prefix)")
	}

	inputDir, err := store.Resolve(ctx, ref, AWSOptions(cmd)...)
	if err != nil {
		return err
	}
	log.Debugf("input snapshot resolved: %s", inputDir)

	mapping, err := LoadMapping(cmd)
	if err != nil {
		return err
	}

	src, err := OpenDiffSource(cmd)
	if err != nil {
		return err
	}
	cs, err := diff.Read(src, mapping)
	src.Close()
	if err != nil {
		return err
	}

	if cmd.Bool("select") && !cs.Empty() {
		cs, err = selectChanges(cs)
		if err != nil {
			return err
		}
		if cs == nil {
			log.Infof("selection cancelled, nothing applied")
			return nil
		}
	}

	outputDir := cmd.String("out")
	if outputDir == "" {
		if outputDir, err = workdir.For("apply::" + ref); err != nil {
			return err
		}
	}

	report, err := snapshot.Apply(ctx, inputDir, outputDir, cs,
		snapshot.WithCollector(m.Metrics))
	if err != nil {
		return err
	}
	log.Infof("snapshot written to %s", outputDir)

	if push := cmd.String("push"); push != "" {
		if err := pushSnapshot(ctx, cmd, outputDir, push); err != nil {
			return err
		}
	}

	output.SliceDiceSpit(report.Rows(), []string{"filename", "action", "kept", "deleted", "inserted"}, cmd, os.Stdout)

	return nil
}

// selectChanges runs the interactive relation picker and returns the
// narrowed change set, or nil if the user cancelled.
func selectChanges(cs *diff.ChangeSet) (*diff.ChangeSet, error) {
	var items []tui.Item
	for _, f := range cs.Filenames() {
		items = append(items, tui.Item{
			Filename: f,
			Inserts:  cs.Inserts[f].Len(),
			Deletes:  cs.Deletes[f].Len(),
		})
	}

	picked, err := tui.SelectRelations(items)
	if err != nil {
		return nil, err
	}
	if picked == nil {
		return nil, nil
	}
	return cs.Restrict(picked), nil
}

func pushSnapshot(ctx context.Context, cmd *cli.Command, outputDir, push string) error {
	ref, ok := store.ParseRef(push)
	if !ok {
		return fmt.Errorf("--push requires an s3://bucket/prefix reference, got %q", push)
	}
	cfg, err := awsx.LoadConfig(ctx, AWSOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	n, err := store.New(awsx.NewS3(cfg)).Push(ctx, ref, outputDir)
	if err != nil {
		return err
	}
	log.Infof("pushed %d files to %s", n, ref)
	return nil
}

// applyCommandBuilder constructs the cli.Command for "apply", wiring
// metadata, flags, and the action handler.
func applyCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "apply a diff to a snapshot",
		UsageText: "factsctl apply <snapshot> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			declFlag,
			&cli.StringFlag{
				Name:    "diff",
				Aliases: []string{"i"},
				Usage:   "diff file to apply, or - for stdin",
				Value:   "-",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"d"},
				Usage:   "output snapshot directory (defaults to a work dir)",
			},
			&cli.StringFlag{
				Name:  "push",
				Usage: "upload the output snapshot to s3://bucket/prefix",
			},
			&cli.BoolFlag{
				Name:  "select",
				Usage: "interactively choose which relations to rewrite",
				Value: false,
			},
			NewProfileFlag(),
			NewRegionFlag(),
		}, NewGlobalFlags()...),
		Action: applyCommandAction,
	}
}
