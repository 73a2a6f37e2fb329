package fsutil

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// HumanSize formats a byte count with IEC units, e.g. "1.5 MiB".
func HumanSize(n int64) string {
	if n < 0 {
		return "-" + humanize.IBytes(uint64(-n))
	}
	return humanize.IBytes(uint64(n))
}

// ParseSize parses sizes such as "512MB", "4GiB" or "1024".
func ParseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("invalid size %q: too large", s)
	}
	return int64(n), nil
}
