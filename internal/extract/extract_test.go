// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements Backend with canned page lines or an error.
type fakeBackend struct {
	pages [][]string
	err   error
	calls int
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) PageLines(path string, maxPages, maxLines int) ([][]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

func TestContentTitle_FirstUsablePageWins(t *testing.T) {
	b := &fakeBackend{pages: [][]string{
		{"42", "..."},
		{"A Title on Page Two", "body text follows here"},
		{"A Title on Page Three"},
	}}
	got, ok := ContentTitle("x.pdf", b, 3, 20, zerolog.Nop())
	require.True(t, ok)
	assert.Equal(t, "A Title on Page Two", got)
}

func TestContentTitle_NoUsableLine(t *testing.T) {
	b := &fakeBackend{pages: [][]string{{"42", "john@example.com"}}}
	_, ok := ContentTitle("x.pdf", b, 3, 20, zerolog.Nop())
	assert.False(t, ok)
}

func TestContentTitle_BackendFailureIsNoCandidate(t *testing.T) {
	b := &fakeBackend{err: errors.New("corrupt file")}
	_, ok := ContentTitle("x.pdf", b, 3, 20, zerolog.Nop())
	assert.False(t, ok)
}

func TestFirstLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{"under limit", "a\nb", 5, []string{"a", "b"}},
		{"at limit", "a\nb\nc", 2, []string{"a", "b"}},
		{"no trailing newline", "a\nb\nc", 10, []string{"a", "b", "c"}},
		{"trailing newline", "a\nb\n", 10, []string{"a", "b"}},
		{"empty", "", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstLines(tt.text, tt.max))
		})
	}
}

// writeGarbage creates a file that no PDF parser should accept.
func writeGarbage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))
	return path
}

func TestBackends_RejectGarbageWithoutPanic(t *testing.T) {
	path := writeGarbage(t)

	for _, b := range []Backend{PrimaryBackend(), FallbackBackend()} {
		_, err := b.PageLines(path, 3, 20)
		assert.Error(t, err, "backend %s", b.Name())
	}
}

func TestMetadataTitle_GarbageFile(t *testing.T) {
	path := writeGarbage(t)
	_, ok := MetadataTitle(path, zerolog.Nop())
	assert.False(t, ok)
}

func TestMetadataTitle_MissingFile(t *testing.T) {
	_, ok := MetadataTitle(filepath.Join(t.TempDir(), "absent.pdf"), zerolog.Nop())
	assert.False(t, ok)
}
