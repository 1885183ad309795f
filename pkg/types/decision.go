// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Outcome classifies the result of one file's rename decision.
type Outcome string

const (
	// OutcomeRenamed means the file was renamed on disk.
	OutcomeRenamed Outcome = "renamed"

	// OutcomePlanned means a dry run reported the rename without applying it.
	OutcomePlanned Outcome = "planned"

	// OutcomeUnchanged means the derived name equals the current name.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeUntitled means no title could be extracted; the file was left alone.
	OutcomeUntitled Outcome = "untitled"

	// OutcomeFailed means the filesystem rejected the rename.
	OutcomeFailed Outcome = "failed"
)

// Decision records what the pipeline decided for one file.
type Decision struct {
	// OriginalName is the file's name before the run.
	OriginalName string `json:"original_name" yaml:"original_name"`

	// NewName is the derived filename, empty when no title was found.
	NewName string `json:"new_name,omitempty" yaml:"new_name,omitempty"`

	// Title is the resolved title the new name was built from.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Source names the resolution step that produced the title
	// (metadata, pdftext, or stream).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Outcome classifies what happened to the file.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Error holds the rename failure message when Outcome is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
