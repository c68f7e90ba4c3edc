// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/diff"
	"github.com/factsctl/factsctl/internal/meta"
	"github.com/factsctl/factsctl/internal/output"
	"github.com/factsctl/factsctl/internal/snapshot"
	"github.com/factsctl/factsctl/internal/store"
	"github.com/factsctl/factsctl/internal/tuple"
)

// checkCommandAction is the action handler for the "check" subcommand. It
// verifies that tuples are present in a snapshot: either tuple literals
// given as arguments, or the inserts of a diff file. Exits 1 when any
// expected tuple is missing.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "check"

	ref := cmd.Args().First()
	if ref == "" {
		return fmt.Errorf("check requires a snapshot (directory or s3://bucket/prefix)")
	}

	inputDir, err := store.Resolve(ctx, ref, AWSOptions(cmd)...)
	if err != nil {
		return err
	}

	mapping, err := LoadMapping(cmd)
	if err != nil {
		return err
	}

	// Group the expected tuples per resolved filename.
	want := map[string]*tuple.Set{}
	if args := cmd.Args().Tail(); len(args) > 0 {
		for _, arg := range args {
			rel, t, err := tuple.Decode(arg)
			if err != nil {
				return err
			}
			f := mapping.FilenameFor(rel)
			if want[f] == nil {
				want[f] = tuple.NewSet()
			}
			want[f].Add(t)
		}
	} else {
		src, err := OpenDiffSource(cmd)
		if err != nil {
			return err
		}
		cs, err := diff.Read(src, mapping)
		src.Close()
		if err != nil {
			return err
		}
		want = cs.Inserts
	}

	allOK := true
	var rows []map[string]interface{}
	for f, set := range want {
		ok, err := snapshot.AllPresent(filepath.Join(inputDir, f), set,
			snapshot.WithCollector(m.Metrics))
		if err != nil {
			return err
		}
		if !ok {
			allOK = false
		}
		rows = append(rows, map[string]interface{}{
			"filename": f,
			"tuples":   set.Len(),
			"present":  ok,
		})
	}

	output.SliceDiceSpit(rows, []string{"filename", "tuples", "present"}, cmd, os.Stdout)

	if !allOK {
		return cli.Exit("", 1)
	}
	return nil
}

// checkCommandBuilder constructs the cli.Command for "check".
func checkCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "verify tuples are present in a snapshot",
		UsageText: "factsctl check <snapshot> [tuple]... [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			declFlag,
			&cli.StringFlag{
				Name:    "diff",
				Aliases: []string{"i"},
				Usage:   "verify the inserts of this diff file, or - for stdin",
				Value:   "-",
			},
			NewProfileFlag(),
			NewRegionFlag(),
		}, NewGlobalFlags()...),
		Action: checkCommandAction,
	}
}
