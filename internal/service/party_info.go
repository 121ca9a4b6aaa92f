package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/set-night/rsvpbot/internal/telegram"
)

// PartyInfo serves the optional event description: an image and a text
// file, both read on every request so edits apply without a restart.
type PartyInfo struct {
	textPath  string
	imagePath string
}

func NewPartyInfo(textPath, imagePath string) *PartyInfo {
	return &PartyInfo{textPath: textPath, imagePath: imagePath}
}

// Available reports whether either file exists and is non-empty.
func (p *PartyInfo) Available() bool {
	return nonEmptyFile(p.textPath) || nonEmptyFile(p.imagePath)
}

// Send delivers the image, then the text. It reports false when neither
// could be read, so the caller can send a fallback.
func (p *PartyInfo) Send(ctx context.Context, sender telegram.Sender, chatID int64) (bool, error) {
	sent := false

	image, err := readOptional(p.imagePath)
	if err != nil {
		slog.Warn("read party info image", "path", p.imagePath, "error", err)
	}
	if len(image) > 0 {
		if err := sender.SendPhoto(ctx, chatID, filepath.Base(p.imagePath), bytes.NewReader(image)); err != nil {
			return sent, fmt.Errorf("send party info image: %w", err)
		}
		sent = true
	}

	text, err := readOptional(p.textPath)
	if err != nil {
		slog.Warn("read party info text", "path", p.textPath, "error", err)
	}
	if body := strings.TrimSpace(string(text)); body != "" {
		if err := sender.SendText(ctx, chatID, body, nil); err != nil {
			return sent, fmt.Errorf("send party info text: %w", err)
		}
		sent = true
	}
	return sent, nil
}

func readOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func nonEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
