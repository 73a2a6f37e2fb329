package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucrnz/qakit/internal/archive"
	"github.com/lucrnz/qakit/internal/cleanup"
)

var tracker *cleanup.Tracker

// SetTracker registers the tracker that records in-flight temp files of
// WriteText so they can be removed if the process is interrupted.
func SetTracker(t *cleanup.Tracker) {
	tracker = t
}

type readConfig struct {
	maxBytes   int64
	decompress bool
}

// ReadOption configures ReadText and ReadLines.
type ReadOption func(*readConfig)

// WithMaxBytes fails the read with ErrTooLarge when the (decompressed)
// content is longer than n bytes. n <= 0 means unlimited.
func WithMaxBytes(n int64) ReadOption {
	return func(c *readConfig) { c.maxBytes = n }
}

// WithoutDecompression returns compressed files as raw bytes.
func WithoutDecompression() ReadOption {
	return func(c *readConfig) { c.decompress = false }
}

func readFile(op, path string, opts []ReadOption) ([]byte, error) {
	cfg := readConfig{decompress: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(op, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if cfg.decompress {
		br := bufio.NewReader(f)
		// A short file makes Peek fail; the partial header is still usable.
		head, _ := br.Peek(archive.MagicLen)
		rc, err := archive.NewReader(br, archive.DetectBytes(head))
		if err != nil {
			return nil, wrap(op, path, err)
		}
		defer rc.Close()
		r = rc
	}
	if cfg.maxBytes > 0 {
		r = io.LimitReader(r, cfg.maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrap(op, path, err)
	}
	if cfg.maxBytes > 0 && int64(len(data)) > cfg.maxBytes {
		return nil, wrap(op, path, fmt.Errorf("%w of %s", ErrTooLarge, HumanSize(cfg.maxBytes)))
	}
	return data, nil
}

// ReadText returns the whole content of the file at path. gzip, zstd, xz
// and bzip2 files are decompressed unless WithoutDecompression is given.
func ReadText(path string, opts ...ReadOption) (string, error) {
	data, err := readFile("read", path, opts)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadLines returns the lines of the file at path without line terminators.
// A final newline does not produce a trailing empty line.
func ReadLines(path string, opts ...ReadOption) ([]string, error) {
	data, err := readFile("read", path, opts)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// WriteText replaces the file at path with content. The data is staged in a
// temp file next to path and renamed into place. If path is a symlink the
// link is kept and its target is replaced. Paths ending in .gz, .zst or .xz
// are written compressed.
func WriteText(path, content string) error {
	target, err := linkTarget(path)
	if err != nil {
		return wrap("write", path, err)
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			return &Error{Op: "write", Path: path, Kind: KindIO, Err: ErrIsDirectory}
		}
		// Surface permission problems on the existing file instead of
		// silently replacing it through the directory.
		f, err := os.OpenFile(target, os.O_WRONLY, 0)
		if err != nil {
			return wrap("write", path, err)
		}
		f.Close()
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return wrap("write", path, err)
	}
	tmpPath := tmp.Name()
	tracker.Track(tmpPath)

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
		tracker.Release(tmpPath)
	}()

	w, err := archive.NewWriter(tmp, archive.FromExtension(target))
	if err != nil {
		return wrap("write", path, err)
	}
	if _, err := io.WriteString(w, content); err != nil {
		return wrap("write", path, err)
	}
	if err := w.Close(); err != nil {
		return wrap("write", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return wrap("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return wrap("write", path, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return wrap("write", path, err)
	}
	committed = true
	return nil
}

// linkTarget follows symlinks at path, including dangling ones, and
// returns the path of the file they end at.
func linkTarget(path string) (string, error) {
	for range maxSymlinkHops {
		info, err := os.Lstat(path)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		link, err := os.Readlink(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return "", fmt.Errorf("too many symlinks")
}

// AppendText appends content to the file at path, creating it if needed.
// Content is appended as-is, even for compressed files.
func AppendText(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return wrap("append", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return wrap("append", path, err)
	}
	return wrap("append", path, f.Close())
}

// FileExists reports whether path names a regular file (after following
// symlinks).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DeleteFile removes the file at path. It reports false, with no error, if
// there was nothing to delete. Directories are refused.
func DeleteFile(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, wrap("delete", path, err)
	}
	if info.IsDir() {
		return false, &Error{Op: "delete", Path: path, Kind: KindIO, Err: ErrIsDirectory}
	}
	if err := os.Remove(path); err != nil {
		return false, wrap("delete", path, err)
	}
	return true, nil
}

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, wrap("size", path, err)
	}
	if info.IsDir() {
		return 0, &Error{Op: "size", Path: path, Kind: KindIO, Err: ErrIsDirectory}
	}
	return info.Size(), nil
}

// Extension returns the extension of path without the leading dot.
// Dotfiles such as ".bashrc" have no extension.
func Extension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// NameWithoutExtension returns the base name of path minus its extension.
func NameWithoutExtension(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
