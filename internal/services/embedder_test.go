package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8NeverSplitsRunes(t *testing.T) {
	// Two-byte runes; an odd byte limit lands mid-rune.
	text := strings.Repeat("é", 10)

	out := truncateUTF8(text, 5)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "éé", out)

	out = truncateUTF8(text, 6)
	assert.Equal(t, "ééé", out)
}

func TestTruncateUTF8LeavesShortInputAlone(t *testing.T) {
	assert.Equal(t, "hello", truncateUTF8("hello", 5))
	assert.Equal(t, "hello", truncateUTF8("hello", 100))
	assert.Equal(t, "", truncateUTF8("", 10))
}

func TestTruncateUTF8ASCIIBoundary(t *testing.T) {
	assert.Equal(t, "abc", truncateUTF8("abcdef", 3))
}

func TestTruncateUTF8MultiByteTail(t *testing.T) {
	// Four-byte rune at the cut point is dropped entirely.
	text := "résumé \U0001F600"
	out := truncateUTF8(text, len(text)-1)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "résumé ", out)
}
