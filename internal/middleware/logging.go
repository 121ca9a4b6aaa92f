package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Logging returns middleware that logs update processing time.
func Logging() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()

			updateType := "unknown"
			var chatID int64
			var userID int64
			var chatType models.ChatType

			if update.Message != nil {
				updateType = "message"
				chatID = update.Message.Chat.ID
				chatType = update.Message.Chat.Type
				if update.Message.From != nil {
					userID = update.Message.From.ID
				}
				if update.Message.Contact != nil {
					updateType = "contact"
				}
			}

			next(ctx, b, update)

			slog.Debug("update processed",
				"type", updateType,
				"chat_id", chatID,
				"chat_type", chatType,
				"user_id", userID,
				"duration", time.Since(start),
			)
		}
	}
}
