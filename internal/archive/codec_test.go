package archive

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	const payload = "id,name\n1,alice\n2,bob\n"

	for _, typ := range []Type{None, Gzip, Zstd, Xz} {
		t.Run(typ.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, typ)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			assert.Equal(t, typ, DetectBytes(buf.Bytes()))

			r, err := NewReader(&buf, typ)
			require.NoError(t, err)
			defer r.Close()
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, string(got))
		})
	}
}

func TestDetectBytes(t *testing.T) {
	assert.Equal(t, Bzip2, DetectBytes([]byte("BZh91AY&SY...")))
	assert.Equal(t, Bzip2, DetectBytes([]byte{'B', 'Z', 'h', '9', 0x17, 0x72, 0x45, 0x38, 0x50, 0x90}))
	assert.Equal(t, None, DetectBytes([]byte("BZh was the bzip2 magic, now plain text\n")))
	assert.Equal(t, None, DetectBytes([]byte("BZh91AY")))
	assert.Equal(t, None, DetectBytes([]byte("BZh01AY&SY")))
	assert.Equal(t, None, DetectBytes([]byte("plain text")))
	assert.Equal(t, None, DetectBytes(nil))
	assert.Equal(t, None, DetectBytes([]byte{0x1f}))
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(short, []byte("a"), 0o644))
	typ, err := Detect(short)
	require.NoError(t, err)
	assert.Equal(t, None, typ)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	typ, err = Detect(empty)
	require.NoError(t, err)
	assert.Equal(t, None, typ)

	_, err = Detect(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromExtension(t *testing.T) {
	assert.Equal(t, Gzip, FromExtension("out/data.csv.gz"))
	assert.Equal(t, Zstd, FromExtension("data.ZST"))
	assert.Equal(t, Xz, FromExtension("data.xz"))
	assert.Equal(t, None, FromExtension("data.bz2"))
	assert.Equal(t, None, FromExtension("data.txt"))
}

func TestNewWriterRejectsBzip2(t *testing.T) {
	_, err := NewWriter(io.Discard, Bzip2)
	assert.Error(t, err)
}
