package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
	"unicode"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Parse errors.
var (
	ErrInvalidUnit     = errors.New("invalid duration unit")
	ErrNumericOverflow = errors.New("duration overflows int64 milliseconds")
)

// Unit conversion factors in milliseconds.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute       = 60 * MillisPerSecond
	MillisPerHour         = 60 * MillisPerMinute
	MillisPerDay          = 24 * MillisPerHour
)

// ParseError describes a failure to parse a compact duration string.
type ParseError struct {
	Input  string
	Offset int  // byte offset of the offending character
	Char   rune // offending unit character, zero for overflow on flush
	Err    error
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("parse duration %q: %v: %q at offset %d", e.Input, e.Err, e.Char, e.Offset)
	}
	return fmt.Sprintf("parse duration %q: %v at offset %d", e.Input, e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// unitMillis maps a lower-cased unit character to its factor.
func unitMillis(c rune) (int64, bool) {
	switch c {
	case 'd':
		return MillisPerDay, true
	case 'h':
		return MillisPerHour, true
	case 'm':
		return MillisPerMinute, true
	case 's':
		return MillisPerSecond, true
	}
	return 0, false
}

// ParseMillis converts a compact duration string such as "2d5h10m30s" into
// milliseconds. Units are d, h, m and s, case-insensitive.
//
// Non-digit characters seen while no digits are pending are skipped, and
// digits with no unit after them are dropped, so "" and "100" both yield 0.
// Repeated units accumulate ("1h2h" is two hours).
func ParseMillis(s string) (int64, error) {
	var total int64
	start := -1 // offset of the pending digit run, -1 when empty

	for i, c := range s {
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}

		value, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return 0, &ParseError{Input: s, Offset: start, Err: ErrNumericOverflow}
		}
		start = -1

		factor, ok := unitMillis(unicode.ToLower(c))
		if !ok {
			return 0, &ParseError{Input: s, Offset: i, Char: c, Err: ErrInvalidUnit}
		}
		if value > math.MaxInt64/factor {
			return 0, &ParseError{Input: s, Offset: i, Char: c, Err: ErrNumericOverflow}
		}
		add := value * factor
		if total > math.MaxInt64-add {
			return 0, &ParseError{Input: s, Offset: i, Char: c, Err: ErrNumericOverflow}
		}
		total += add
	}

	return total, nil
}

// Parse is ParseMillis returning a time.Duration.
func Parse(s string) (time.Duration, error) {
	ms, err := ParseMillis(s)
	if err != nil {
		return 0, err
	}
	return FromMillis(ms)
}

// FromMillis converts milliseconds to a time.Duration, failing if the
// nanosecond count would not fit.
func FromMillis(ms int64) (time.Duration, error) {
	if ms > math.MaxInt64/int64(time.Millisecond) || ms < math.MinInt64/int64(time.Millisecond) {
		return 0, fmt.Errorf("%d ms: %w", ms, ErrNumericOverflow)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// ParseExtended parses Go-style duration strings plus days (d) and weeks (w).
// Examples: "1h30m500ms", "1w2d3h", "300s"
func ParseExtended(s string) (time.Duration, error) {
	d, err := str2duration.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse extended duration %q: %w", s, err)
	}
	return d, nil
}
