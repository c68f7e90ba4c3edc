// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects subsets of summary rows based on field values.
//
// Filters are key-operator-target expressions combined with a configurable
// delimiter (default: comma). Operators:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric comparison)
//   - > : greater than (numeric comparison)
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "filename=edge.facts" : rows whose filename equals "edge.facts"
//   - "filename^edge"       : rows whose filename starts with "edge"
//   - "inserted>0"          : rows with at least one inserted tuple
//   - "action!=copied"      : rows that were not plain copies
//
// Invalid specifications are logged and skipped, allowing partial filter sets
// to be processed.
package filters
