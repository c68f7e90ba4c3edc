// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/meta"
	"github.com/factsctl/factsctl/internal/output"
	"github.com/factsctl/factsctl/internal/snapshot"
	"github.com/factsctl/factsctl/internal/store"
)

// lsCommandAction is the action handler for the "ls" subcommand. It lists
// the relations of a snapshot with tuple counts and sizes.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "ls"

	ref := cmd.Args().First()
	if ref == "" {
		ref = m.StartingDir
	}
	dir, err := store.Resolve(ctx, ref, AWSOptions(cmd)...)
	if err != nil {
		return err
	}

	mapping, err := LoadMapping(cmd)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var rows []map[string]interface{}
	for _, entry := range entries {
		if entry.IsDir() || !factFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		tuples, err := countLines(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		rows = append(rows, map[string]interface{}{
			"relation": mapping.RelationFor(entry.Name()),
			"filename": entry.Name(),
			"tuples":   tuples,
			"size":     humanize.Bytes(uint64(info.Size())),
			"bytes":    info.Size(),
		})
	}
	log.Debugf("found %d relation files in %s", len(rows), dir)

	output.SliceDiceSpit(rows, []string{"relation", "filename", "tuples", "size"}, cmd, os.Stdout)

	return nil
}

func factFile(name string) bool {
	for _, suffix := range snapshot.DefaultSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// countLines counts non-blank lines, one tuple per line.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open fact file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var n int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			n++
		}
	}
	return n, scanner.Err()
}

// lsCommandBuilder constructs the cli.Command for "ls".
func lsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list relations in a snapshot",
		UsageText: "factsctl ls [snapshot] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			declFlag,
			NewProfileFlag(),
			NewRegionFlag(),
		}, NewGlobalFlags()...),
		Action: lsCommandAction,
	}
}
