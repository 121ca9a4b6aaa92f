package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/repository"
)

var t0 = time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC)

func newGuestLog(t *testing.T, records ...domain.GuestRecord) *repository.GuestLog {
	t.Helper()
	log := repository.NewGuestLog(filepath.Join(t.TempDir(), "rsvps.jsonl"))
	for _, rec := range records {
		require.NoError(t, log.Append(context.Background(), rec))
	}
	return log
}

func guest(chatID, userID int64, at time.Time, name string) domain.GuestRecord {
	return domain.GuestRecord{
		ChatID:    chatID,
		UserID:    userID,
		Timestamp: at,
		Language:  "en",
		FullName:  name,
		Status:    domain.StatusActive,
	}
}
