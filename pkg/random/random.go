// Package random generates throwaway test data: alphanumeric and numeric
// tokens and version-4 UUIDs. Tokens come from math/rand/v2 and are not
// suitable for secrets.
package random

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Token alphabets.
const (
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	Digits       = "0123456789"
)

// Source supplies uniformly distributed ints in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator draws tokens from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator backed by src, or by the global
// math/rand/v2 source when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeeded returns a Generator with a deterministic PCG source.
func NewSeeded(seed1, seed2 uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed1, seed2)))
}

// FromAlphabet returns n bytes picked from alphabet. It returns "" when n <= 0
// or alphabet is empty. alphabet is treated as bytes.
func (g *Generator) FromAlphabet(n int, alphabet string) string {
	if n <= 0 || alphabet == "" {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.src.IntN(len(alphabet))]
	}
	return string(b)
}

// String returns n characters from Alphanumeric.
func (g *Generator) String(n int) string {
	return g.FromAlphabet(n, Alphanumeric)
}

// NumericString returns n characters from Digits. Leading zeros are allowed.
func (g *Generator) NumericString(n int) string {
	return g.FromAlphabet(n, Digits)
}

var std = NewGenerator(nil)

// String returns n random alphanumeric characters.
func String(n int) string { return std.String(n) }

// NumericString returns n random decimal digits.
func NumericString(n int) string { return std.NumericString(n) }

// FromAlphabet returns n random bytes from alphabet.
func FromAlphabet(n int, alphabet string) string { return std.FromAlphabet(n, alphabet) }

// UUID returns a new random (version 4) UUID in canonical form.
func UUID() string {
	return uuid.NewString()
}

// IsUUID reports whether s is a canonical version-4 UUID.
func IsUUID(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil || len(s) != 36 {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}
