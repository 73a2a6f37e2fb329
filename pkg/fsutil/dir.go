package fsutil

import (
	"os"
	"path/filepath"
)

// RootFolderPath returns the absolute working directory.
func RootFolderPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", wrap("getwd", ".", err)
	}
	return wd, nil
}

// RootFolderName returns the last element of the working directory.
func RootFolderName() (string, error) {
	wd, err := RootFolderPath()
	if err != nil {
		return "", err
	}
	return filepath.Base(wd), nil
}

// CreateDirectory creates path and any missing parents. An existing
// directory is not an error.
func CreateDirectory(path string) error {
	return wrap("mkdir", path, os.MkdirAll(path, 0o755))
}

// DirectoryExists reports whether path names a directory.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListFiles returns the regular files in dir whose names match the glob
// pattern ("*" when empty). Matches that resolve outside dir, through ".."
// or symlinks, are dropped. The result is sorted.
func ListFiles(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, wrap("list", dir, err)
	}
	if !info.IsDir() {
		return nil, &Error{Op: "list", Path: dir, Kind: KindIO, Err: ErrNotDir}
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, wrap("list", dir, err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, wrap("list", dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil || !IsWithin(abs, absDir) {
			continue
		}
		if _, err := ResolveWithin(abs, absDir); err != nil {
			continue
		}
		if FileExists(m) {
			files = append(files, m)
		}
	}
	return files, nil
}
