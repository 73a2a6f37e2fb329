package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAndParent(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "c.txt"), JoinPaths("a", "b/", "c.txt"))
	assert.Equal(t, "", JoinPaths())
	assert.Equal(t, filepath.Join("a", "b"), ParentDirectory(filepath.Join("a", "b", "c.txt")))
	assert.Equal(t, ".", ParentDirectory("c.txt"))
}

func TestAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wd, err := os.Getwd()
	require.NoError(t, err)

	abs, err := AbsolutePath("x/y")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "x", "y"), abs)
}

func TestStripComponents(t *testing.T) {
	assert.Equal(t, "a/b/c", StripComponents("a/b/c", 0))
	assert.Equal(t, filepath.FromSlash("b/c"), StripComponents("a/b/c", 1))
	assert.Equal(t, "", StripComponents("a/b/c", 3))
}

func TestIsWithin(t *testing.T) {
	base := filepath.FromSlash("/srv/data")
	assert.True(t, IsWithin(base, base))
	assert.True(t, IsWithin(filepath.Join(base, "x"), base))
	assert.False(t, IsWithin(filepath.FromSlash("/srv/database"), base))
	assert.False(t, IsWithin(filepath.Join(base, "..", "etc"), base))
	assert.True(t, IsWithin(filepath.FromSlash("/etc"), string(filepath.Separator)))
}

func TestResolveWithin(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, CreateDirectory(filepath.Join(base, "real")))

	got, err := ResolveWithin(filepath.Join(base, "real", "missing", "f"), base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "real", "missing", "f"), got)

	got, err = ResolveWithin(base, base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(base), got)

	_, err = ResolveWithin(filepath.Dir(base), base)
	assert.Error(t, err)

	if err := os.Symlink(filepath.Join(base, "real"), filepath.Join(base, "alias")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	got, err = ResolveWithin(filepath.Join(base, "alias", "f.txt"), base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "real", "f.txt"), got)

	require.NoError(t, os.Symlink(os.TempDir(), filepath.Join(base, "out")))
	_, err = ResolveWithin(filepath.Join(base, "out", "f.txt"), base)
	assert.Error(t, err)
}
