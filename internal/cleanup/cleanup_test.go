package cleanup

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRemoveAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tmp")
	b := filepath.Join(dir, "b.tmp")
	keep := filepath.Join(dir, "keep.txt")
	for _, p := range []string{a, b, keep} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	tr := NewTracker()
	tr.Track(a)
	tr.Track(b)
	tr.Track(keep)
	tr.Release(keep)
	tr.Track("")

	assert.Equal(t, []string{a, b}, tr.Pending())

	tr.RemoveAll()

	assert.NoFileExists(t, a)
	assert.NoFileExists(t, b)
	assert.FileExists(t, keep)
	assert.Empty(t, tr.Pending())
}

func TestTrackerMissingFileIsNotAnError(t *testing.T) {
	tr := NewTracker()
	tr.Track(filepath.Join(t.TempDir(), "never-created"))
	require.NotPanics(t, tr.RemoveAll)
	assert.Empty(t, tr.Pending())
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tr *Tracker
	require.NotPanics(t, func() {
		tr.Track("x")
		tr.Release("x")
		tr.RemoveAll()
	})
	assert.Nil(t, tr.Pending())
}

func TestTrackerConcurrentUse(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := filepath.Join("tmp", string(rune('a'+i%26)))
			tr.Track(p)
			tr.Release(p)
		}(i)
	}
	wg.Wait()
	assert.Empty(t, tr.Pending())
}
