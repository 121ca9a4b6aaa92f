//go:generate go run go.uber.org/mock/mockgen -source=sender.go -destination=mocks/sender_mock.go -package=mocks

package telegram

import (
	"context"
	"fmt"
	"io"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const MaxMessageLen = 4096

// Sender is the outbound side of the chat transport.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error
	SendDocument(ctx context.Context, chatID int64, filename string, data io.Reader, caption string) error
	SendPhoto(ctx context.Context, chatID int64, filename string, data io.Reader) error
	CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error
}

// BotSender implements Sender on top of a go-telegram bot.
type BotSender struct {
	bot *bot.Bot
}

func NewBotSender(b *bot.Bot) *BotSender {
	return &BotSender{bot: b}
}

// SendText sends text as plain messages, splitting it when it exceeds the
// platform limit. The markup is attached to the last part only.
func (s *BotSender) SendText(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) error {
	parts := SplitMessage(text, MaxMessageLen)
	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   part,
		}
		if i == len(parts)-1 && markup != nil {
			params.ReplyMarkup = markup
		}
		if _, err := s.bot.SendMessage(ctx, params); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

func (s *BotSender) SendDocument(ctx context.Context, chatID int64, filename string, data io.Reader, caption string) error {
	_, err := s.bot.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chatID,
		Document: &models.InputFileUpload{Filename: filename, Data: data},
		Caption:  caption,
	})
	if err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

func (s *BotSender) SendPhoto(ctx context.Context, chatID int64, filename string, data io.Reader) error {
	_, err := s.bot.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo:  &models.InputFileUpload{Filename: filename, Data: data},
	})
	if err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}

// CopyMessage relays a message without the "forwarded from" header.
func (s *BotSender) CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error {
	_, err := s.bot.CopyMessage(ctx, &bot.CopyMessageParams{
		ChatID:     toChatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
	if err != nil {
		return fmt.Errorf("copy message: %w", err)
	}
	return nil
}
