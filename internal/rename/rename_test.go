// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plisking/rename-pdf/internal/extract"
	"github.com/plisking/rename-pdf/internal/pdftest"
	"github.com/plisking/rename-pdf/pkg/types"
)

// titleByName returns a single-step chain mapping file base names to titles.
// Files absent from the map resolve to no candidate.
func titleByName(titles map[string]string) []extract.Step {
	return []extract.Step{{Name: "fake", Run: func(path string) (string, bool) {
		t, ok := titles[filepath.Base(path)]
		return t, ok
	}}}
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	touch(t, dir, "B.PDF")
	touch(t, dir, "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

	names, err := ListPDFs(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.pdf", "B.PDF"}, names)
}

func TestListPDFs_MissingDirectory(t *testing.T) {
	_, err := ListPDFs(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestBatch_RenamesFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.pdf")
	steps := titleByName(map[string]string{"x.pdf": "A Proper Title"})

	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.FileExists(t, filepath.Join(dir, "A Proper Title.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "x.pdf"))

	require.Len(t, result.Decisions, 1)
	d := result.Decisions[0]
	assert.Equal(t, "x.pdf", d.OriginalName)
	assert.Equal(t, "A Proper Title.pdf", d.NewName)
	assert.Equal(t, types.OutcomeRenamed, d.Outcome)
}

func TestBatch_DryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.pdf")
	steps := titleByName(map[string]string{"x.pdf": "A Proper Title"})

	result, err := Batch(types.RenameConfig{Directory: dir, DryRun: true}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	assert.FileExists(t, filepath.Join(dir, "x.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "A Proper Title.pdf"))
	assert.Equal(t, types.OutcomePlanned, result.Decisions[0].Outcome)
}

func TestBatch_SelfRenameIsUnchanged(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "A Proper Title.pdf")
	steps := titleByName(map[string]string{"A Proper Title.pdf": "A Proper Title"})

	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Unchanged)
	assert.FileExists(t, filepath.Join(dir, "A Proper Title.pdf"))
	assert.Equal(t, types.OutcomeUnchanged, result.Decisions[0].Outcome)
}

func TestBatch_UntitledFileIsLeftAlone(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "opaque.pdf")
	steps := titleByName(nil)

	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Untitled)
	assert.FileExists(t, filepath.Join(dir, "opaque.pdf"))
	assert.Equal(t, types.OutcomeUntitled, result.Decisions[0].Outcome)
	assert.False(t, result.HasFailures())
}

func TestBatch_RenameFailureDoesNotAbort(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.pdf")
	touch(t, dir, "y.pdf")

	// The step deletes x.pdf before the rename decision so the rename
	// itself fails; y.pdf must still be processed.
	steps := []extract.Step{{Name: "fake", Run: func(path string) (string, bool) {
		if filepath.Base(path) == "x.pdf" {
			require.NoError(t, os.Remove(path))
			return "Vanished Before Rename", true
		}
		return "Still Here Title", true
	}}}

	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Renamed)
	assert.True(t, result.HasFailures())
	assert.FileExists(t, filepath.Join(dir, "Still Here Title.pdf"))
}

func TestBatch_CollisionGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "first.pdf")
	touch(t, dir, "second.pdf")
	steps := titleByName(map[string]string{
		"first.pdf":  "Shared Title",
		"second.pdf": "Shared Title",
	})

	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Renamed)
	assert.FileExists(t, filepath.Join(dir, "Shared Title.pdf"))
	assert.FileExists(t, filepath.Join(dir, "Shared Title_1.pdf"))
}

func TestBatch_EndToEndWithRealExtraction(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, pdftest.Write(filepath.Join(dir, "doc1.pdf"), pdftest.File{
		Title: "Systems Design 101",
	}))
	require.NoError(t, pdftest.Write(filepath.Join(dir, "doc2.pdf"), pdftest.File{
		PageLines: []string{"Scalable Caching", "John Doe", "john@x.com"},
	}))

	steps := extract.DefaultSteps(types.ExtractConfig{}, zerolog.Nop())
	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Renamed)
	assert.False(t, result.HasFailures())
	assert.FileExists(t, filepath.Join(dir, "Systems Design 101.pdf"))
	assert.FileExists(t, filepath.Join(dir, "Scalable Caching.pdf"))
}

func TestBatch_EndToEndAllExtractorsFail(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pdf"),
		[]byte("this is not a pdf"), 0o644))

	steps := extract.DefaultSteps(types.ExtractConfig{}, zerolog.Nop())
	result, err := Batch(types.RenameConfig{Directory: dir}, steps, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Untitled)
	assert.False(t, result.HasFailures())
	assert.FileExists(t, filepath.Join(dir, "broken.pdf"))
}
