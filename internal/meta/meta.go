// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/factsctl/factsctl/internal/config"
	"github.com/factsctl/factsctl/internal/metrics"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, loaded configuration, context, the shared metrics collector, and
// the starting working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Metrics     metrics.Collector
	StartingDir string
}
