package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type LogType string

const (
	LogTypeError        LogType = "error"
	LogTypeRegistration LogType = "registration"
	LogTypeSignOut      LogType = "signOut"
	LogTypeUnlink       LogType = "unlink"
	LogTypeBroadcast    LogType = "broadcast"
)

const logSendTimeout = 10 * time.Second

// TelegramLogger mirrors notable events to a log chat. A zero chat id
// disables it. Failures are only logged locally.
type TelegramLogger struct {
	sender Sender
	chatID int64
}

func NewTelegramLogger(sender Sender, chatID int64) *TelegramLogger {
	return &TelegramLogger{sender: sender, chatID: chatID}
}

func (l *TelegramLogger) Log(logType LogType, message string) {
	if l == nil || l.chatID == 0 {
		return
	}

	// Truncate if too long
	if len([]rune(message)) > MaxMessageLen {
		message = string([]rune(message)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), logSendTimeout)
	defer cancel()

	if err := l.sender.SendText(ctx, l.chatID, message, nil); err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (l *TelegramLogger) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ Error\n\nContext: %s\nError: %s\nTime: %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	l.Log(LogTypeError, msg)
}

func (l *TelegramLogger) LogRegistration(userID, chatID int64, name, avec string) {
	msg := fmt.Sprintf("👤 Registration\n\nUser: %d\nChat: %d\nName: %s", userID, chatID, name)
	if avec != "" {
		msg += fmt.Sprintf("\nAvec: %s", avec)
	}
	l.Log(LogTypeRegistration, msg)
}

func (l *TelegramLogger) LogSignOut(userID, chatID int64, name string) {
	msg := fmt.Sprintf("🚪 Signed out\n\nUser: %d\nChat: %d\nName: %s", userID, chatID, name)
	l.Log(LogTypeSignOut, msg)
}

func (l *TelegramLogger) LogUnlink(handle string, count int) {
	msg := fmt.Sprintf("🔗 Avec unlinked\n\nHandle: @%s\nRecords: %d", handle, count)
	l.Log(LogTypeUnlink, msg)
}

func (l *TelegramLogger) LogBroadcast(runID string, sent, failed int) {
	msg := fmt.Sprintf("📣 Broadcast %s\n\nSent: %d\nFailed: %d", runID, sent, failed)
	l.Log(LogTypeBroadcast, msg)
}
