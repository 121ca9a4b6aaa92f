package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/time/rate"

	"github.com/set-night/rsvpbot/internal/i18n"
	"github.com/set-night/rsvpbot/internal/telegram"
)

// ChatLimiter keeps one token bucket per chat.
type ChatLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewChatLimiter allows perMinute messages per chat with the given burst.
// It returns nil when perMinute is not positive.
func NewChatLimiter(perMinute, burst int) *ChatLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &ChatLimiter{
		limiters: make(map[int64]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

func (l *ChatLimiter) Allow(chatID int64) bool {
	l.mu.Lock()
	lim, ok := l.limiters[chatID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[chatID] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

// RateLimit returns middleware that enforces per-minute rate limits.
// A nil limiter disables it.
func RateLimit(limiter *ChatLimiter, sender telegram.Sender) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Only rate limit messages
			if limiter == nil || update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if limiter.Allow(chatID) {
				next(ctx, b, update)
				return
			}

			slog.Debug("rate limited", "chat_id", chatID)
			lang := i18n.English
			if update.Message.From != nil && update.Message.From.LanguageCode == i18n.Finnish {
				lang = i18n.Finnish
			}
			if err := sender.SendText(ctx, chatID, i18n.T(lang, i18n.SlowDown), nil); err != nil {
				slog.Warn("send rate limit notice", "chat_id", chatID, "error", err)
			}
		}
	}
}
