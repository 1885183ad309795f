// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default scan bounds per backend. Titles live near the top of page one;
// later pages only matter when page one is a cover image.
const (
	DefaultPrimaryMaxPages  = 3
	DefaultPrimaryMaxLines  = 20
	DefaultFallbackMaxPages = 2
	DefaultFallbackMaxLines = 30
)

// ExtractConfig bounds the title-extraction scan: how many leading pages to
// read and how many lines of each page to consider, per backend.
type ExtractConfig struct {
	// PrimaryMaxPages is the page limit for the primary text backend.
	PrimaryMaxPages int `json:"primary_max_pages" yaml:"primary_max_pages"`

	// PrimaryMaxLines is the per-page line limit for the primary text backend.
	PrimaryMaxLines int `json:"primary_max_lines" yaml:"primary_max_lines"`

	// FallbackMaxPages is the page limit for the fallback text backend.
	FallbackMaxPages int `json:"fallback_max_pages" yaml:"fallback_max_pages"`

	// FallbackMaxLines is the per-page line limit for the fallback text backend.
	FallbackMaxLines int `json:"fallback_max_lines" yaml:"fallback_max_lines"`
}

// Normalized returns a copy with zero or negative bounds replaced by the
// defaults.
func (c ExtractConfig) Normalized() ExtractConfig {
	if c.PrimaryMaxPages <= 0 {
		c.PrimaryMaxPages = DefaultPrimaryMaxPages
	}
	if c.PrimaryMaxLines <= 0 {
		c.PrimaryMaxLines = DefaultPrimaryMaxLines
	}
	if c.FallbackMaxPages <= 0 {
		c.FallbackMaxPages = DefaultFallbackMaxPages
	}
	if c.FallbackMaxLines <= 0 {
		c.FallbackMaxLines = DefaultFallbackMaxLines
	}
	return c
}

// RenameConfig holds settings for a batch rename run.
type RenameConfig struct {
	// Directory is the target directory whose PDF files are renamed.
	Directory string `json:"directory" yaml:"directory"`

	// DryRun reports intended renames without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Extract bounds the title-extraction scan.
	Extract ExtractConfig `json:"extract" yaml:"extract"`
}
