// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename converts resolved titles into safe, unique filenames and
// drives the sequential batch rename of a directory's PDF files.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plisking/rename-pdf/internal/title"
)

const (
	// reservedChars are replaced with underscores; the set is the Windows
	// reserved filename characters, the strictest common denominator.
	reservedChars = `<>:"/\|?*`

	// maxBaseRunes caps the filename stem to keep paths portable.
	maxBaseRunes = 150

	// placeholder is used when no usable title survives normalization.
	placeholder = "untitled"

	pdfExt = ".pdf"
)

// NormalizeBase turns a resolved title (possibly empty) into a safe filename
// stem: sanitized, reserved characters replaced, underscore runs collapsed,
// truncated, and stripped of leading/trailing dots and spaces. The result is
// never empty and carries no extension.
func NormalizeBase(t string) string {
	if t == "" {
		t = placeholder
	}
	t = title.Sanitize(t)

	var b strings.Builder
	b.Grow(len(t))
	prevUnderscore := false
	for _, r := range t {
		if strings.ContainsRune(reservedChars, r) {
			r = '_'
		}
		if r == '_' {
			if prevUnderscore {
				continue
			}
			prevUnderscore = true
		} else {
			prevUnderscore = false
		}
		b.WriteRune(r)
	}
	t = b.String()

	if runes := []rune(t); len(runes) > maxBaseRunes {
		t = string(runes[:maxBaseRunes])
	}
	t = strings.Trim(t, ". ")

	if t == "" {
		t = placeholder
	}
	return t
}

// BuildFilename converts a resolved title into a collision-free filename
// within dir. The directory listing is the source of truth for collisions
// and is consulted at decision time, never cached. currentName is exempt:
// renaming a file to its own current name is not a collision.
func BuildFilename(t, dir, currentName string) string {
	base := NormalizeBase(t)
	name := base + pdfExt
	for counter := 1; ; counter++ {
		if name == currentName {
			break
		}
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s_%d%s", base, counter, pdfExt)
	}
	return name
}
