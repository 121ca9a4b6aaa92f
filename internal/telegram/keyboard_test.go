package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyKeyboardDropsEmptyRows(t *testing.T) {
	kb := ReplyKeyboard(ButtonRow("fi", "en"), ButtonRow(), ButtonRow("/start"))

	assert.True(t, kb.ResizeKeyboard)
	assert.False(t, kb.OneTimeKeyboard)
	assert.Len(t, kb.Keyboard, 2)
	assert.Equal(t, "en", kb.Keyboard[0][1].Text)
	assert.Equal(t, "/start", kb.Keyboard[1][0].Text)
}

func TestOneTimeKeyboard(t *testing.T) {
	kb := OneTimeKeyboard(ButtonRow("yes", "no"))
	assert.True(t, kb.OneTimeKeyboard)
	assert.Len(t, kb.Keyboard, 1)
}
