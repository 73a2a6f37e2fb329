// Package datetime formats the current date and time with caller-supplied
// patterns. See Layout for the accepted pattern dialects.
package datetime

import (
	"strings"
	"time"
)

// Default patterns used when the caller passes an empty string.
const (
	DefaultDatePattern      = "yyyy-MM-dd"
	DefaultTimestampPattern = "yyyy-MM-dd HH:mm:ss"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Formatter formats the time reported by its Clock.
type Formatter struct {
	Clock Clock
}

// NewFormatter returns a Formatter on clock, or on SystemClock if clock is nil.
func NewFormatter(clock Clock) *Formatter {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Formatter{Clock: clock}
}

// Today formats the current date. An empty pattern means DefaultDatePattern.
func (f *Formatter) Today(pattern string) string {
	if pattern == "" {
		pattern = DefaultDatePattern
	}
	return Format(f.Clock.Now(), pattern)
}

// Timestamp formats the current time. An empty pattern means DefaultTimestampPattern.
func (f *Formatter) Timestamp(pattern string) string {
	if pattern == "" {
		pattern = DefaultTimestampPattern
	}
	return Format(f.Clock.Now(), pattern)
}

// Format renders t using pattern. Quoted literals of letter patterns are
// copied verbatim.
func Format(t time.Time, pattern string) string {
	if dialectOf(pattern) != letters {
		return t.Format(Layout(pattern))
	}
	var b strings.Builder
	for _, seg := range letterSegments(pattern) {
		if seg.literal {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(t.Format(seg.text))
	}
	return b.String()
}

var system = NewFormatter(nil)

// TodayDate formats today's local date.
func TodayDate(pattern string) string { return system.Today(pattern) }

// CurrentTimestamp formats the current local time.
func CurrentTimestamp(pattern string) string { return system.Timestamp(pattern) }
