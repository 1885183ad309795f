// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest assembles minimal but well-formed single-page PDF files
// for tests. Object offsets and the cross-reference table are computed, not
// hardcoded, so both strict and relaxed parsers accept the output.
package pdftest

import (
	"fmt"
	"os"
	"strings"
)

// File describes a fixture document.
type File struct {
	// Title is written to the Info dictionary; empty omits the entry.
	Title string

	// PageLines are rendered as one text line each on the single page.
	PageLines []string
}

// Write assembles the fixture and writes it to path.
func Write(path string, f File) error {
	var buf strings.Builder
	var offsets []int

	buf.WriteString("%PDF-1.4\n")

	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	addObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
		"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")
	addObj("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	content := contentStream(f.PageLines)
	addObj(fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
		len(content), content))

	info := "<< /Producer (pdftest) >>"
	if f.Title != "" {
		info = fmt.Sprintf("<< /Producer (pdftest) /Title (%s) >>", escapeString(f.Title))
	}
	addObj(fmt.Sprintf("6 0 obj\n%s\nendobj\n", info))

	xrefOff := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 6 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOff)

	return os.WriteFile(path, []byte(buf.String()), 0o644)
}

// contentStream renders each line as its own positioned text-show operation
// so extractors see one row per line.
func contentStream(lines []string) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 18 Tf\n72 720 Td\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("0 -24 Td\n")
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escapeString(line))
	}
	b.WriteString("ET")
	return b.String()
}

// escapeString escapes the characters with meaning inside a PDF string
// literal.
func escapeString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
