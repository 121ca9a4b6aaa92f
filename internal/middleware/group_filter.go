package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Scope decides which chats the bot serves.
type Scope interface {
	InScope(chatID int64, private bool) bool
}

// GroupFilter drops updates that carry no message and messages from
// non-private chats other than the configured group.
func GroupFilter(scope Scope) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				return
			}
			chat := update.Message.Chat
			if !scope.InScope(chat.ID, chat.Type == models.ChatTypePrivate) {
				slog.Debug("ignoring update from foreign chat", "chat_id", chat.ID, "chat_type", chat.Type)
				return
			}
			next(ctx, b, update)
		}
	}
}
