// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for factsctl's user
// configuration. The configuration is a YAML document located in the user's
// configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/factsctl.yaml or $HOME/.config/factsctl.yaml
//   - Windows: %APPDATA%/factsctl/factsctl.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions.
package config
