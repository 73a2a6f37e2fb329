package archive

import (
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Type identifies a compression format.
type Type int

const (
	None Type = iota
	Gzip
	Zstd
	Xz
	Bzip2
)

func (t Type) String() string {
	switch t {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	case Bzip2:
		return "bzip2"
	default:
		return "none"
	}
}

var magics = []struct {
	typ   Type
	magic []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{Xz, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}},
}

// bzip2 streams start with "BZh", a block size digit, then either the
// block magic (pi) or, for an empty stream, the end-of-stream magic (sqrt pi).
var (
	bzip2Block = []byte{0x31, 0x41, 0x59, 0x26, 0x53, 0x59}
	bzip2End   = []byte{0x17, 0x72, 0x45, 0x38, 0x50, 0x90}
)

// MagicLen is the number of leading bytes DetectBytes needs.
const MagicLen = 10

// DetectBytes identifies a compression format from the first bytes of a stream.
func DetectBytes(head []byte) Type {
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.typ
		}
	}
	if isBzip2(head) {
		return Bzip2
	}
	return None
}

func isBzip2(head []byte) bool {
	if len(head) < MagicLen || !bytes.HasPrefix(head, []byte("BZh")) {
		return false
	}
	if head[3] < '1' || head[3] > '9' {
		return false
	}
	return bytes.Equal(head[4:10], bzip2Block) || bytes.Equal(head[4:10], bzip2End)
}

// Detect reads the first bytes of the file at path and identifies its format.
func Detect(path string) (Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return None, err
	}
	defer f.Close()

	head := make([]byte, MagicLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return None, fmt.Errorf("read header: %w", err)
	}
	return DetectBytes(head[:n]), nil
}

// FromExtension maps a file extension to the format used when writing.
// bzip2 has no writer, so .bz2 maps to None.
func FromExtension(path string) Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".xz":
		return Xz
	default:
		return None
	}
}

// NewReader wraps r with a decompressor for t. None returns r unchanged.
func NewReader(r io.Reader, t Type) (io.ReadCloser, error) {
	switch t {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return gz, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case Xz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		return io.NopCloser(xr), nil
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", t)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w with a compressor for t. Close flushes the compressor but
// does not close w.
func NewWriter(w io.Writer, t Type) (io.WriteCloser, error) {
	switch t {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case Xz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		return xw, nil
	default:
		return nil, fmt.Errorf("unsupported compression type for writing: %s", t)
	}
}
