// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract derives a title for a PDF document, trying embedded
// metadata first and then the text of the leading pages. Two independent
// text backends are provided because some malformed or oddly-encoded PDFs
// fail one parser's extraction while succeeding on the other's.
package extract

import (
	"github.com/rs/zerolog"

	"github.com/plisking/rename-pdf/internal/title"
)

// Backend extracts raw page text from a PDF. Each backend is stateless;
// the document is opened fresh per call and closed before returning.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// PageLines returns the first maxLines lines of text for each of the
	// first maxPages pages, in document order. A page whose text cannot be
	// extracted is skipped, not an error. The error is reserved for
	// document-level failures (unreadable or corrupt file).
	PageLines(path string, maxPages, maxLines int) ([][]string, error)
}

// ContentTitle scans the leading pages of the document through b and returns
// the first line that qualifies as a title, in page order. ok is false when
// the document cannot be opened or no page yields a usable line. Failures
// are logged at debug level and never propagated.
func ContentTitle(path string, b Backend, maxPages, maxLines int, logger zerolog.Logger) (string, bool) {
	pages, err := b.PageLines(path, maxPages, maxLines)
	if err != nil {
		logger.Debug().Err(err).Str("backend", b.Name()).Str("path", path).
			Msg("text extraction failed")
		return "", false
	}
	for _, lines := range pages {
		if candidate, ok := title.PickTitle(lines); ok {
			return candidate, true
		}
	}
	return "", false
}

// firstLines splits text into lines and returns at most max of them.
func firstLines(text string, max int) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text) && len(lines) < max; i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) && len(lines) < max {
		lines = append(lines, text[start:])
	}
	return lines
}
