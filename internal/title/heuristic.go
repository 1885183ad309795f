// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Bounds for a plausible title line. Lengths are in runes, matching how a
// human would judge "too short" or "too long" regardless of encoding.
const (
	minLineRunes      = 3   // anything shorter is noise
	maxDotCount       = 5   // rejects ellipses and dotted-leader TOC lines
	minTitleRunes     = 5   // exclusive lower bound on the trimmed line
	maxTitleRunes     = 200 // exclusive upper bound on the trimmed line
	minSanitizedRunes = 5   // exclusive lower bound after Sanitize
)

// numericLine matches lines that are nothing but digits, e.g. page numbers.
var numericLine = regexp.MustCompile(`^[0-9]+$`)

// bylineMarkers flag contact or author lines, matched case-insensitively.
var bylineMarkers = []string{"@", "email", "author"}

// PickTitle scans lines in document order and returns the first one that
// looks like a title. The policy is greedy first-match, not best-of-N, so
// callers must preserve the line order of the source page. The returned
// string is sanitized and trimmed. ok is false when no line qualifies.
func PickTitle(lines []string) (candidate string, ok bool) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		n := utf8.RuneCountInString(line)
		if n < minLineRunes || strings.Count(line, ".") > maxDotCount {
			continue
		}

		low := strings.ToLower(line)
		if numericLine.MatchString(line) || containsAny(low, bylineMarkers) {
			continue
		}

		if n <= minTitleRunes || n >= maxTitleRunes {
			continue
		}

		cleaned := Sanitize(line)
		if utf8.RuneCountInString(cleaned) > minSanitizedRunes && strings.Contains(cleaned, " ") {
			return cleaned, true
		}
	}
	return "", false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
