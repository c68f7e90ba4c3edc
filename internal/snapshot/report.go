// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package snapshot

// Actions taken for a relation during Apply.
const (
	ActionModified = "modified"
	ActionCopied   = "copied"
	ActionSkipped  = "skipped"
)

// RelationReport describes what Apply did for one relation file.
type RelationReport struct {
	Filename string `yaml:"filename" json:"filename"`
	Action   string `yaml:"action" json:"action"`
	Kept     int    `yaml:"kept" json:"kept"`
	Deleted  int    `yaml:"deleted" json:"deleted"`
	Inserted int    `yaml:"inserted" json:"inserted"`
}

// Report is the outcome of one Apply run.
type Report struct {
	InputDir  string           `yaml:"inputDir" json:"inputDir"`
	OutputDir string           `yaml:"outputDir" json:"outputDir"`
	Relations []RelationReport `yaml:"relations" json:"relations"`
}

// NewReport constructs an empty report for the given directories.
func NewReport(inputDir, outputDir string) *Report {
	return &Report{InputDir: inputDir, OutputDir: outputDir}
}

// Add appends one relation outcome.
func (r *Report) Add(rr RelationReport) {
	r.Relations = append(r.Relations, rr)
}

// Rows flattens the report into the generic dataset shape consumed by the
// output package.
func (r *Report) Rows() []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(r.Relations))
	for _, rr := range r.Relations {
		rows = append(rows, map[string]interface{}{
			"filename": rr.Filename,
			"action":   rr.Action,
			"kept":     rr.Kept,
			"deleted":  rr.Deleted,
			"inserted": rr.Inserted,
		})
	}
	return rows
}
