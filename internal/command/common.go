// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	awsx "github.com/factsctl/factsctl/internal/aws"
	"github.com/factsctl/factsctl/internal/decl"
	"github.com/factsctl/factsctl/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadMapping parses the --decl declaration file. Without the flag the
// default filename mapping is used.
func LoadMapping(cmd *cli.Command) (*decl.Mapping, error) {
	path := cmd.String("decl")
	if path == "" {
		return decl.NewMapping(), nil
	}
	return decl.Parse(path)
}

// OpenDiffSource opens the --diff source: a path, or stdin for "-".
// The caller owns the returned closer.
func OpenDiffSource(cmd *cli.Command) (io.ReadCloser, error) {
	path := cmd.String("diff")
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// AWSOptions collects the --profile/--region overrides for commands that
// resolve s3:// snapshot references.
func AWSOptions(cmd *cli.Command) (opts []awsx.Option) {
	if profile := cmd.String("profile"); profile != "" {
		opts = append(opts, awsx.WithProfile(profile))
	}
	if region := cmd.String("region"); region != "" {
		opts = append(opts, awsx.WithRegion(region))
	}
	return
}
