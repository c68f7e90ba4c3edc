// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package workdir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/factsctl/factsctl/internal/log"
)

// Dir resolves the base scratch directory used for fetched remote snapshots.
// Precedence:
//  1. FACTSCTL_WORK_DIR, if set and non-empty
//  2. os.UserCacheDir()/factsctl
//
// Returns ("", false) if a base cannot be resolved.
func Dir() (string, bool) {
	if d, ok := os.LookupEnv("FACTSCTL_WORK_DIR"); ok && d != "" {
		return d, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "factsctl"), true
	}
	return "", false
}

// EnsureBaseDir creates the base scratch directory. Returns the path, whether
// it is usable, and an error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create work base directory: %w", err)
	}
	log.Debugf("work dir ready: path=%s", base)
	return base, true, nil
}

// For returns a stable per-key scratch directory beneath the base, creating
// it as needed. The key (typically a remote snapshot address) is hashed into
// the directory name so repeated fetches of the same snapshot land in the
// same place.
func For(key string) (string, error) {
	base, ok, err := EnsureBaseDir()
	if err != nil {
		return "", err
	}
	if !ok {
		// No resolvable base; fall back to a throwaway temp dir.
		return os.MkdirTemp("", "factsctl-")
	}

	dir := filepath.Join(base, encodeKey(key))
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	return dir, nil
}

// Discard removes a scratch directory produced by For. Only paths beneath the
// base are removed; anything else is refused.
func Discard(dir string) error {
	base, ok := Dir()
	if ok {
		if rel, err := filepath.Rel(base, dir); err == nil && !filepath.IsLocal(rel) {
			return fmt.Errorf("refusing to remove %s: outside work dir", dir)
		}
	}
	return os.RemoveAll(dir)
}

// encodeKey hashes a clear-text key into a filesystem-safe name.
func encodeKey(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
