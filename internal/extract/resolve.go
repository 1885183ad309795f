// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"github.com/rs/zerolog"

	"github.com/plisking/rename-pdf/pkg/types"
)

// Step is one stage of the title-resolution chain. Steps are independent:
// a failure in one never blocks the next.
type Step struct {
	Name string
	Run  func(path string) (string, bool)
}

// DefaultSteps returns the standard resolution chain. The order encodes a
// quality preference: explicit metadata beats primary-backend text, which
// beats fallback-backend text.
func DefaultSteps(cfg types.ExtractConfig, logger zerolog.Logger) []Step {
	cfg = cfg.Normalized()
	return []Step{
		{Name: "metadata", Run: func(path string) (string, bool) {
			return MetadataTitle(path, logger)
		}},
		{Name: "pdftext", Run: func(path string) (string, bool) {
			return ContentTitle(path, PrimaryBackend(), cfg.PrimaryMaxPages, cfg.PrimaryMaxLines, logger)
		}},
		{Name: "stream", Run: func(path string) (string, bool) {
			return ContentTitle(path, FallbackBackend(), cfg.FallbackMaxPages, cfg.FallbackMaxLines, logger)
		}},
	}
}

// Resolve evaluates steps in order and returns the first usable title along
// with the name of the step that produced it. ok is false when every step
// comes up empty.
func Resolve(path string, steps []Step) (candidate, source string, ok bool) {
	for _, s := range steps {
		if t, ok := s.Run(path); ok {
			return t, s.Name, true
		}
	}
	return "", "", false
}
