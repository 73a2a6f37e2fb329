// Package fsutil wraps common file, directory and path operations used by
// test scripts.
//
// Every helper opens what it needs and closes it before returning. Failures
// are reported as *Error, which matches ErrFileNotFound, ErrPermissionDenied
// or ErrIO through errors.Is while keeping the underlying io/fs error
// reachable.
//
// Reads transparently decompress gzip, zstd, xz and bzip2 content. Writes
// are atomic (temp file plus rename) and compress according to the target
// extension.
package fsutil
