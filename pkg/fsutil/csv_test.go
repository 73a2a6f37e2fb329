package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv.gz")
	require.NoError(t, WriteText(path, "id,name\n1,alice\n2,\"bob, jr\"\n"))

	tbl, err := LoadCSV(path, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tbl.Header)
	assert.Equal(t, []map[string]string{
		{"id": "1", "name": "alice"},
		{"id": "2", "name": "bob, jr"},
	}, tbl.Records())
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.csv")
	require.NoError(t, WriteText(path, "1,alice\n2,bob\n"))

	tbl, err := LoadCSV(path, false)
	require.NoError(t, err)
	assert.Nil(t, tbl.Header)
	assert.Nil(t, tbl.Records())
	assert.Equal(t, [][]string{{"1", "alice"}, {"2", "bob"}}, tbl.Rows)
}

func TestLoadCSVErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadCSV(filepath.Join(dir, "missing.csv"), true)
	assert.ErrorIs(t, err, ErrFileNotFound)

	ragged := filepath.Join(dir, "ragged.csv")
	require.NoError(t, WriteText(ragged, "a,b\n1\n"))
	_, err = LoadCSV(ragged, true)
	assert.ErrorIs(t, err, ErrIO)
}
