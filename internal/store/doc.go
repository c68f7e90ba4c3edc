// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc

// Package store resolves snapshot references. A reference is either a
// local directory or an s3://bucket/prefix location whose fact files
// are staged into the work dir before use.
package store
