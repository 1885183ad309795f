// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfTextBackend extracts page text with the ledongthuc parser, which
// decodes font-encoded glyphs into UTF-8. Rows are read top to bottom so
// the document's line order is preserved for the heuristic.
type pdfTextBackend struct{}

// PrimaryBackend returns the preferred text-extraction backend.
func PrimaryBackend() Backend { return pdfTextBackend{} }

func (pdfTextBackend) Name() string { return "pdftext" }

func (pdfTextBackend) PageLines(path string, maxPages, maxLines int) ([][]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n := r.NumPage()
	if n > maxPages {
		n = maxPages
	}

	var pages [][]string
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		lines, err := rowLines(p, maxLines)
		if err != nil {
			// Unreadable page; the remaining pages may still work.
			continue
		}
		if len(lines) > 0 {
			pages = append(pages, lines)
		}
	}
	return pages, nil
}

// rowLines reads one page's text rows, converting a parser panic into an
// error so a single bad page cannot take down the document scan.
func rowLines(p pdf.Page, maxLines int) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if len(lines) >= maxLines {
			break
		}
		var b strings.Builder
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		lines = append(lines, b.String())
	}
	return lines, nil
}
