// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// ParseFactsDir validates a snapshot directory spec and returns it as an
// absolute path. It returns an error if the fs entry does not exist, is empty
// or is not a directory.
func ParseFactsDir(dir string) (string, error) {
	if dir == "" {
		return "", os.ErrInvalid
	}

	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}
