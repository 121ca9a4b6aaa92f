package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/set-night/rsvpbot/internal/domain"
)

const (
	logDirMode  = 0o755
	logFileMode = 0o644
)

// guestLine is the JSON shape of one log line. Decoding is
// case-insensitive on keys, so lines written with PascalCase keys read
// the same.
type guestLine struct {
	ChatID           int64     `json:"chatId"`
	UserID           int64     `json:"userId"`
	Timestamp        time.Time `json:"timestamp"`
	Language         string    `json:"language"`
	FullName         string    `json:"fullName"`
	AvecFullName     *string   `json:"avecFullName"`
	TelegramUsername *string   `json:"telegramUsername"`
	AvecUsername     *string   `json:"avecUsername"`
	Status           *string   `json:"status"`
}

// GuestLog is an append-only JSONL log of guest records. Every read
// replays the whole file. Writes are serialized by a gate owned by the
// instance; readers do not take it.
type GuestLog struct {
	path string
	gate chan struct{}
	now  func() time.Time
}

func NewGuestLog(path string) *GuestLog {
	return &GuestLog{
		path: filepath.Clean(path),
		gate: make(chan struct{}, 1),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Path returns the log file location.
func (l *GuestLog) Path() string {
	return l.path
}

// Append writes rec as one newline-terminated line and syncs it to disk
// before returning. Cancellation is honored only until the write lock is
// held.
func (l *GuestLog) Append(ctx context.Context, rec domain.GuestRecord) error {
	line, err := encodeLine(rec)
	if err != nil {
		return err
	}
	if err := l.lock(ctx); err != nil {
		return err
	}
	defer l.unlock()

	return l.writeLines(line)
}

// Scan replays every parseable record in log order. A missing log is an
// empty log; malformed lines are skipped.
func (l *GuestLog) Scan(ctx context.Context, fn func(domain.GuestRecord)) error {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open guest log: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, readErr := reader.ReadBytes('\n')
		if len(raw) > 0 {
			lineNo++
			if rec, ok := decodeLine(raw); ok {
				fn(rec)
			} else if len(bytes.TrimSpace(raw)) > 0 {
				slog.Debug("skipping malformed guest log line", "path", l.path, "line", lineNo)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			slog.Warn("guest log read stopped early", "path", l.path, "line", lineNo, "error", readErr)
			return nil
		}
	}
}

// Roster replays the log into the latest record per identity.
func (l *GuestLog) Roster(ctx context.Context) (*domain.Roster, error) {
	roster := domain.NewRoster()
	if err := l.Scan(ctx, roster.Add); err != nil {
		return nil, err
	}
	return roster, nil
}

// LatestFor returns the newest record of the identity (userID if nonzero,
// else chatID). ok is false when the identity never appears.
func (l *GuestLog) LatestFor(ctx context.Context, userID, chatID int64) (domain.GuestRecord, bool, error) {
	key := domain.IdentityKey(userID, chatID)
	var (
		latest domain.GuestRecord
		found  bool
	)
	err := l.Scan(ctx, func(rec domain.GuestRecord) {
		if rec.Key() != key {
			return
		}
		if !found || !rec.Timestamp.Before(latest.Timestamp) {
			latest = rec
			found = true
		}
	})
	if err != nil {
		return domain.GuestRecord{}, false, err
	}
	return latest, found, nil
}

// UnlinkCompanionByHandle appends a corrective record for every currently
// active guest whose companion handle equals handle (case-insensitive),
// clearing the companion. The replay and the appends run under the write
// lock. It returns the number of guests corrected.
func (l *GuestLog) UnlinkCompanionByHandle(ctx context.Context, handle string) (int, error) {
	handle = domain.CanonicalHandle(handle)
	if handle == "" {
		return 0, nil
	}
	if err := l.lock(ctx); err != nil {
		return 0, err
	}
	defer l.unlock()

	roster, err := l.Roster(ctx)
	if err != nil {
		return 0, fmt.Errorf("replay guest log: %w", err)
	}

	now := l.now()
	var lines [][]byte
	for _, rec := range roster.Active() {
		if !strings.EqualFold(rec.AvecUsername, handle) {
			continue
		}
		line, err := encodeLine(rec.WithoutAvec(now))
		if err != nil {
			return 0, err
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return 0, nil
	}
	if err := l.writeLines(lines...); err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (l *GuestLog) lock(ctx context.Context) error {
	select {
	case l.gate <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *GuestLog) unlock() {
	<-l.gate
}

// writeLines must be called with the gate held. The lines are joined and
// written with a single call so that a record never lands half-written.
func (l *GuestLog) writeLines(lines ...[]byte) error {
	if err := os.MkdirAll(filepath.Dir(l.path), logDirMode); err != nil {
		return fmt.Errorf("create guest log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return fmt.Errorf("open guest log for append: %w", err)
	}
	if _, err := f.Write(bytes.Join(lines, nil)); err != nil {
		_ = f.Close()
		return fmt.Errorf("append guest record: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync guest log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close guest log: %w", err)
	}
	return nil
}

func encodeLine(rec domain.GuestRecord) ([]byte, error) {
	status := string(rec.Status)
	if status == "" {
		status = string(domain.StatusActive)
	}
	data, err := json.Marshal(guestLine{
		ChatID:           rec.ChatID,
		UserID:           rec.UserID,
		Timestamp:        rec.Timestamp,
		Language:         rec.Language,
		FullName:         rec.FullName,
		AvecFullName:     optional(rec.AvecFullName),
		TelegramUsername: optional(rec.Username),
		AvecUsername:     optional(rec.AvecUsername),
		Status:           &status,
	})
	if err != nil {
		return nil, fmt.Errorf("encode guest record: %w", err)
	}
	return append(data, '\n'), nil
}

func decodeLine(raw []byte) (domain.GuestRecord, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return domain.GuestRecord{}, false
	}
	var line guestLine
	if err := json.Unmarshal(raw, &line); err != nil {
		return domain.GuestRecord{}, false
	}
	if line.ChatID == 0 && line.UserID == 0 {
		return domain.GuestRecord{}, false
	}
	return domain.GuestRecord{
		ChatID:       line.ChatID,
		UserID:       line.UserID,
		Timestamp:    line.Timestamp,
		Language:     line.Language,
		FullName:     line.FullName,
		AvecFullName: deref(line.AvecFullName),
		Username:     deref(line.TelegramUsername),
		AvecUsername: deref(line.AvecUsername),
		Status:       domain.ParseStatus(deref(line.Status)),
	}, true
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
