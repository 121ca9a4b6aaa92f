package telegram

import "github.com/go-telegram/bot/models"

// ButtonRow creates a row of text buttons.
func ButtonRow(labels ...string) []models.KeyboardButton {
	row := make([]models.KeyboardButton, 0, len(labels))
	for _, label := range labels {
		row = append(row, models.KeyboardButton{Text: label})
	}
	return row
}

// ReplyKeyboard builds a resized reply keyboard from rows of buttons.
// Empty rows are dropped.
func ReplyKeyboard(rows ...[]models.KeyboardButton) *models.ReplyKeyboardMarkup {
	kb := &models.ReplyKeyboardMarkup{ResizeKeyboard: true}
	for _, row := range rows {
		if len(row) > 0 {
			kb.Keyboard = append(kb.Keyboard, row)
		}
	}
	return kb
}

// OneTimeKeyboard is a ReplyKeyboard that hides after one press.
func OneTimeKeyboard(rows ...[]models.KeyboardButton) *models.ReplyKeyboardMarkup {
	kb := ReplyKeyboard(rows...)
	kb.OneTimeKeyboard = true
	return kb
}

