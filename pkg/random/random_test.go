package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertFromAlphabet(t *testing.T, s, alphabet string) {
	t.Helper()
	for _, c := range s {
		require.True(t, strings.ContainsRune(alphabet, c), "unexpected %q in %q", c, s)
	}
}

func TestStringLengthAndAlphabet(t *testing.T) {
	for n := 0; n <= 64; n++ {
		s := String(n)
		require.Len(t, s, n)
		assertFromAlphabet(t, s, Alphanumeric)
	}
}

func TestNumericStringLengthAndAlphabet(t *testing.T) {
	for n := 0; n <= 64; n++ {
		s := NumericString(n)
		require.Len(t, s, n)
		assertFromAlphabet(t, s, Digits)
	}
}

func TestNonPositiveLength(t *testing.T) {
	assert.Equal(t, "", String(-1))
	assert.Equal(t, "", NumericString(0))
	assert.Equal(t, "", FromAlphabet(5, ""))
}

func TestFromAlphabet(t *testing.T) {
	s := FromAlphabet(100, "ab")
	require.Len(t, s, 100)
	assertFromAlphabet(t, s, "ab")
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeeded(1, 2).String(32)
	b := NewSeeded(1, 2).String(32)
	c := NewSeeded(3, 4).String(32)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestAlphabetCoverage(t *testing.T) {
	g := NewSeeded(42, 42)
	s := g.String(10000)
	for _, c := range Alphanumeric {
		assert.True(t, strings.ContainsRune(s, c), "never produced %q", c)
	}
}

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestGeneratorUsesSource(t *testing.T) {
	g := NewGenerator(fixedSource(0))
	assert.Equal(t, "AAAA", g.String(4))
	assert.Equal(t, "0000", g.NumericString(4))
}

func TestUUID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := UUID()
		require.True(t, IsUUID(id), id)
		require.NotEqual(t, prev, id)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))
	assert.False(t, IsUUID("not-a-uuid"))
	// version 1
	assert.False(t, IsUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	// braces and urn forms parse but are not canonical
	assert.False(t, IsUUID("{f47ac10b-58cc-4372-a567-0e02b2c3d479}"))
}
