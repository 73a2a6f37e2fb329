package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JoinPaths joins path elements with the OS separator and cleans the result.
func JoinPaths(elems ...string) string {
	return filepath.Join(elems...)
}

// AbsolutePath resolves p against the working directory.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", wrap("abs", p, err)
	}
	return abs, nil
}

// ParentDirectory returns the directory containing p.
func ParentDirectory(p string) string {
	return filepath.Dir(p)
}

// StripComponents removes n leading path components from p.
// Returns empty string if n >= number of components.
func StripComponents(p string, n int) string {
	if n <= 0 {
		return p
	}
	parts := strings.Split(filepath.ToSlash(p), "/")
	if n >= len(parts) {
		return ""
	}
	return filepath.FromSlash(strings.Join(parts[n:], "/"))
}

// IsWithin reports whether p is base itself or lexically inside it.
func IsWithin(p, base string) bool {
	cleanPath := filepath.Clean(p)
	cleanBase := filepath.Clean(base)

	if cleanPath == cleanBase {
		return true
	}
	prefix := cleanBase
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath, prefix)
}

const maxSymlinkHops = 255

// ResolveWithin walks the absolute path p below base, following symlinks
// that exist on disk, and fails if any of them points outside base. The
// final path does not need to exist; resolution stops at the first missing
// component.
func ResolveWithin(p, base string) (string, error) {
	cleanBase := filepath.Clean(base)
	cleanPath := filepath.Clean(p)

	if !IsWithin(cleanPath, cleanBase) {
		return "", fmt.Errorf("path escapes %s: %s", cleanBase, cleanPath)
	}

	rel, err := filepath.Rel(cleanBase, cleanPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == "." {
		return cleanBase, nil
	}

	parts := strings.Split(rel, string(filepath.Separator))
	resolved := cleanBase
	hops := 0

	for i := 0; i < len(parts); i++ {
		resolved = filepath.Join(resolved, parts[i])

		info, err := os.Lstat(resolved)
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.Join(resolved, filepath.Join(parts[i+1:]...)), nil
			}
			return "", fmt.Errorf("lstat %s: %w", resolved, err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return "", fmt.Errorf("too many symlinks while resolving %s", cleanPath)
		}

		target, err := os.Readlink(resolved)
		if err != nil {
			return "", fmt.Errorf("readlink %s: %w", resolved, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(resolved), target)
		}
		target = filepath.Clean(target)
		if !IsWithin(target, cleanBase) {
			return "", fmt.Errorf("symlink escapes %s: %s -> %s", cleanBase, resolved, target)
		}

		// Restart from base with the link target spliced in.
		rest, err := filepath.Rel(cleanBase, filepath.Join(target, filepath.Join(parts[i+1:]...)))
		if err != nil {
			return "", fmt.Errorf("relative path: %w", err)
		}
		if rest == "." {
			return cleanBase, nil
		}
		parts = strings.Split(rest, string(filepath.Separator))
		resolved = cleanBase
		i = -1
	}

	return resolved, nil
}
