package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/set-night/rsvpbot/internal/telegram"
)

// BroadcastResult is the tally of one broadcast run.
type BroadcastResult struct {
	RunID  string
	Sent   int
	Failed int
}

// Broadcaster relays one message to every active guest and to every
// companion whose handle resolves to a known chat.
type Broadcaster struct {
	store  GuestStore
	sender telegram.Sender
	delay  time.Duration
}

func NewBroadcaster(store GuestStore, sender telegram.Sender, delay time.Duration) *Broadcaster {
	return &Broadcaster{store: store, sender: sender, delay: delay}
}

// Recipients returns the distinct chat ids to broadcast to.
func (b *Broadcaster) Recipients(ctx context.Context) ([]int64, error) {
	roster, err := b.store.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("replay guest log: %w", err)
	}

	var chats []int64
	for _, rec := range roster.Active() {
		chats = append(chats, rec.ChatID)
		if rec.AvecUsername == "" {
			continue
		}
		if chatID, ok := roster.ChatForHandle(rec.AvecUsername); ok {
			chats = append(chats, chatID)
		}
	}
	return lo.Uniq(lo.Without(chats, 0)), nil
}

// Run copies the message to every recipient, pacing the sends. A failed
// delivery is counted and the fan-out continues. Cancellation stops the
// run and returns the tally so far with the context error.
func (b *Broadcaster) Run(ctx context.Context, fromChatID int64, messageID int) (BroadcastResult, error) {
	result := BroadcastResult{RunID: uuid.NewString()}

	recipients, err := b.Recipients(ctx)
	if err != nil {
		return result, err
	}

	limit := rate.Inf
	if b.delay > 0 {
		limit = rate.Every(b.delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	slog.Info("broadcast started", "run_id", result.RunID, "recipients", len(recipients), "from_chat_id", fromChatID)
	for _, chatID := range recipients {
		if err := limiter.Wait(ctx); err != nil {
			slog.Warn("broadcast interrupted", "run_id", result.RunID, "sent", result.Sent, "failed", result.Failed)
			return result, err
		}
		if err := b.sender.CopyMessage(ctx, chatID, fromChatID, messageID); err != nil {
			result.Failed++
			slog.Warn("broadcast delivery failed", "run_id", result.RunID, "chat_id", chatID, "error", err)
			continue
		}
		result.Sent++
	}
	slog.Info("broadcast finished", "run_id", result.RunID, "sent", result.Sent, "failed", result.Failed)
	return result, nil
}
