// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package title turns raw text extracted from a PDF into a plausible
// document title: Sanitize cleans individual strings, PickTitle selects
// the best candidate line from page text.
package title

import (
	"strings"
	"unicode"
)

// allowedPunct lists the punctuation that may appear in a candidate title.
// Everything else apart from letters, digits, underscore, and hyphens/dashes
// is stripped.
const allowedPunct = ".,;:!?'\""

// Sanitize cleans a raw extracted string into printable candidate text:
// Unicode control characters are removed, runs of whitespace collapse into a
// single space, and any character outside the allowed title alphabet is
// dropped. The result is trimmed and possibly empty. Sanitize is idempotent.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if unicode.In(r, unicode.C) {
			continue
		}
		if unicode.IsSpace(r) {
			// Collapse the run; never emit a leading space.
			if b.Len() > 0 {
				pendingSpace = true
			}
			continue
		}
		if !allowedTitleRune(r) {
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// allowedTitleRune reports whether r may appear in a sanitized title.
func allowedTitleRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return true
	}
	switch r {
	case '-', '–', '—': // hyphen, en dash, em dash
		return true
	}
	return strings.ContainsRune(allowedPunct, r)
}
