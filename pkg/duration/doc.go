// Package duration parses compact duration strings and blocks for them.
//
// # Grammar
//
// A duration string is zero or more segments of ASCII digits followed by one
// unit character: d (days), h (hours), m (minutes) or s (seconds), in either
// case. Segments are concatenated with no separators: "2d5h10m30s".
//
// Parsing is lenient in two places. A non-digit character with no digits in
// front of it is skipped, and digits at the end of the input with no unit are
// dropped. A non-unit character directly after digits is an error
// (ErrInvalidUnit). Values that do not fit int64 milliseconds fail with
// ErrNumericOverflow.
//
// # Waiting
//
// Wait, WaitMillis and WaitFor block the calling goroutine. They honor
// context cancellation on a best-effort basis: the timer is abandoned as
// soon as the context ends, but nothing else is interrupted.
package duration
