// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/plisking/rename-pdf/internal/extract"
	"github.com/plisking/rename-pdf/pkg/types"
)

// BatchResult holds the outcome of a batch rename run.
type BatchResult struct {
	// Renamed counts applied renames, or planned ones in a dry run.
	Renamed   int
	Unchanged int
	Untitled  int
	Failed    int

	// Decisions is the per-file trail, in processing order.
	Decisions []types.Decision
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Renamed + r.Unchanged + r.Untitled + r.Failed
}

// HasFailures reports whether any rename was rejected by the filesystem.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ListPDFs returns the names of regular entries in dir whose name ends in
// .pdf, case-insensitively. Enumeration order follows the directory listing
// and is not guaranteed stable.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), pdfExt) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Batch resolves a title for every PDF in cfg.Directory and renames the
// files sequentially, one document fully resolved before the next begins.
// Per-file failures are logged and recorded but never abort the batch; the
// only error returned is an unreadable target directory.
func Batch(cfg types.RenameConfig, steps []extract.Step, logger zerolog.Logger) (BatchResult, error) {
	names, err := ListPDFs(cfg.Directory)
	if err != nil {
		return BatchResult{}, err
	}
	logger.Info().Int("count", len(names)).Msg("pdf files to process")

	var result BatchResult
	for i, name := range names {
		logger.Info().Msgf("(%d/%d) processing: %s", i+1, len(names), name)
		result.record(processOne(cfg, name, steps, logger))
	}
	return result, nil
}

// processOne resolves and renames a single file.
func processOne(cfg types.RenameConfig, name string, steps []extract.Step, logger zerolog.Logger) types.Decision {
	path := filepath.Join(cfg.Directory, name)

	resolved, source, ok := extract.Resolve(path, steps)
	if !ok {
		logger.Warn().Str("file", name).Msg("could not extract a title")
		return types.Decision{OriginalName: name, Outcome: types.OutcomeUntitled}
	}

	newName := BuildFilename(resolved, cfg.Directory, name)
	d := types.Decision{
		OriginalName: name,
		NewName:      newName,
		Title:        resolved,
		Source:       source,
	}

	switch {
	case newName == name:
		logger.Info().Str("file", name).Msg("no change needed")
		d.Outcome = types.OutcomeUnchanged
	case cfg.DryRun:
		logger.Info().Str("from", name).Str("to", newName).Str("title", resolved).
			Msg("would rename")
		d.Outcome = types.OutcomePlanned
	default:
		if err := os.Rename(path, filepath.Join(cfg.Directory, newName)); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("rename failed")
			d.Outcome = types.OutcomeFailed
			d.Error = err.Error()
		} else {
			logger.Info().Str("from", name).Str("to", newName).Msg("renamed")
			logger.Debug().Str("title", resolved).Msg("resolved title")
			d.Outcome = types.OutcomeRenamed
		}
	}
	return d
}

// record tallies one decision into the result.
func (r *BatchResult) record(d types.Decision) {
	switch d.Outcome {
	case types.OutcomeRenamed, types.OutcomePlanned:
		r.Renamed++
	case types.OutcomeUnchanged:
		r.Unchanged++
	case types.OutcomeUntitled:
		r.Untitled++
	case types.OutcomeFailed:
		r.Failed++
	}
	r.Decisions = append(r.Decisions, d)
}
