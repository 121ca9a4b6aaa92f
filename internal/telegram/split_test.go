package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	t.Run("short text is one part", func(t *testing.T) {
		assert.Equal(t, []string{"hello"}, SplitMessage("hello", 10))
	})

	t.Run("splits at newline in second half", func(t *testing.T) {
		text := "abcdefg\nhijklmnop"
		parts := SplitMessage(text, 10)
		assert.Equal(t, []string{"abcdefg\n", "hijklmnop"}, parts)
	})

	t.Run("hard split without newline", func(t *testing.T) {
		parts := SplitMessage(strings.Repeat("x", 25), 10)
		require.Len(t, parts, 3)
		assert.Equal(t, 10, len(parts[0]))
		assert.Equal(t, 5, len(parts[2]))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		text := strings.Repeat("ä", 4100)
		parts := SplitMessage(text, MaxMessageLen)
		require.Len(t, parts, 2)
		assert.Equal(t, MaxMessageLen, utf8.RuneCountInString(parts[0]))
		assert.Equal(t, text, strings.Join(parts, ""))
	})
}
