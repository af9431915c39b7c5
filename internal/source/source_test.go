package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"notes.txt", true},
		{"README", true},
		{"wrapper.txt", true},
		{"wrap", true},
		{"my.wrap.txt", true},
		{".hidden", false},
		{".", false},
		{"..", false},
		{"wrap.notes.txt", false},
		{"wrap.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.name))
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "wrap.notes.txt", OutputName("notes.txt"))
	assert.Equal(t, "wrap.notes.txt", OutputName(filepath.Join("some", "dir", "notes.txt")))
	assert.Equal(t, "wrap.a-very-long-file-name.md", OutputName("a-very-long-file-name.md"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "stdin", KindStdin.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDir.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestResolve(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("words"), 0644))

	kind, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, KindStdin, kind)

	kind, err = Resolve(file)
	require.NoError(t, err)
	assert.Equal(t, KindFile, kind)

	kind, err = Resolve(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, KindDir, kind)

	_, err = Resolve(filepath.Join(tmpDir, "missing.txt"))
	var pathErr *PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "stat", pathErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolveUnsupportedType(t *testing.T) {
	if _, err := os.Stat("/dev/null"); err != nil {
		t.Skip("/dev/null not available")
	}
	_, err := Resolve("/dev/null")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "neither a regular file nor a directory")
}

func TestList(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", ".secret", "wrap.a.txt", "c.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	listing, err := List(tmpDir, nil)
	require.NoError(t, err)

	absDir, err := filepath.Abs(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []Pair{
		{Source: filepath.Join(absDir, "a.txt"), Output: filepath.Join(absDir, "wrap.a.txt")},
		{Source: filepath.Join(absDir, "b.txt"), Output: filepath.Join(absDir, "wrap.b.txt")},
		{Source: filepath.Join(absDir, "c.md"), Output: filepath.Join(absDir, "wrap.c.md")},
	}, listing.Pairs)
	assert.Equal(t, []string{"sub"}, listing.Skipped)
	assert.Empty(t, listing.Errors)

	listing, err = List(tmpDir, []string{"md"})
	require.NoError(t, err)
	require.Len(t, listing.Pairs, 1)
	assert.Equal(t, "wrap.c.md", filepath.Base(listing.Pairs[0].Output))
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "gone"), nil)
	var pathErr *PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "scan", pathErr.Op)
}
