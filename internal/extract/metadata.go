// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rs/zerolog"

	"github.com/plisking/rename-pdf/internal/title"
)

// metaAccessor is one strategy for reading the embedded title of a PDF.
// Producers write the Info dictionary in several shapes (key case varies,
// string encodings differ, and some files defeat one parser but not the
// other), so MetadataTitle tries a fixed ordered list of accessors and
// takes the first non-empty answer.
type metaAccessor struct {
	name string
	read func(path string) (string, error)
}

var metaAccessors = []metaAccessor{
	{"info-dict/Title", infoDictTitle("Title")},
	{"info-dict/title", infoDictTitle("title")},
	{"pdfcpu-info", pdfcpuInfoTitle},
}

// MetadataTitle reads the document's embedded title metadata, if any,
// sanitized. ok is false when no accessor yields a usable string. Accessor
// failures are logged at debug level and never propagated.
func MetadataTitle(path string, logger zerolog.Logger) (string, bool) {
	for _, a := range metaAccessors {
		raw, err := readMetadata(a, path)
		if err != nil {
			logger.Debug().Err(err).Str("accessor", a.name).Str("path", path).
				Msg("metadata read failed")
			continue
		}
		if cleaned := title.Sanitize(raw); cleaned != "" {
			return cleaned, true
		}
	}
	return "", false
}

// readMetadata runs one accessor, converting a parser panic into an error.
// The ledongthuc parser panics on some malformed cross-reference tables.
func readMetadata(a metaAccessor, path string) (raw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: parser panic: %v", a.name, r)
		}
	}()
	return a.read(path)
}

// infoDictTitle returns an accessor reading the given key from the trailer's
// Info dictionary.
func infoDictTitle(key string) func(path string) (string, error) {
	return func(path string) (string, error) {
		f, r, err := pdf.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()

		info := r.Trailer().Key("Info")
		if info.Kind() != pdf.Dict {
			return "", nil
		}
		v := info.Key(key)
		if v.Kind() != pdf.String {
			return "", nil
		}
		return v.Text(), nil
	}
}

// pdfcpuInfoTitle reads the Info dictionary through pdfcpu's cross-reference
// table, decoding literal and hex string shapes.
func pdfcpuInfoTitle(path string) (string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return "", err
	}
	if ctx.Info == nil {
		return "", nil
	}
	d, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil || d == nil {
		return "", nil
	}
	obj, found := d.Find("Title")
	if !found {
		return "", nil
	}
	obj, err = ctx.Dereference(obj)
	if err != nil {
		return "", nil
	}
	switch s := obj.(type) {
	case types.StringLiteral:
		return types.StringLiteralToString(s)
	case types.HexLiteral:
		return types.HexLiteralToString(s)
	}
	return "", nil
}
