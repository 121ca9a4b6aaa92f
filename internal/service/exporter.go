package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/set-night/rsvpbot/internal/config"
	"github.com/set-night/rsvpbot/internal/domain"
)

var csvHeader = []string{"ChatId", "UserId", "Username", "Language", "FullName", "AvecFullName", "AvecUsername", "Timestamp"}

// Exporter materializes the current guest list.
type Exporter struct {
	store GuestStore
	dir   string
	now   func() time.Time
}

func NewExporter(store GuestStore, dir string) *Exporter {
	return &Exporter{store: store, dir: dir, now: time.Now}
}

// Snapshot returns the latest record of every identity that is not
// Deleted, in log-scan order.
func (e *Exporter) Snapshot(ctx context.Context) ([]domain.GuestRecord, error) {
	roster, err := e.store.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("replay guest log: %w", err)
	}
	return roster.Active(), nil
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []domain.GuestRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ChatID, 10),
			strconv.FormatInt(rec.UserID, 10),
			rec.Username,
			rec.Language,
			rec.FullName,
			rec.AvecFullName,
			rec.AvecUsername,
			rec.Timestamp.Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteFile writes the snapshot as CSV to path. A missing guest log
// yields a header-only file. It returns the number of data rows.
func (e *Exporter) WriteFile(ctx context.Context, path string) (int, error) {
	records, err := e.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close export file: %w", err)
	}
	return len(records), nil
}

// ExportFile writes a uniquely named, timestamped snapshot under the
// export directory and returns its path.
func (e *Exporter) ExportFile(ctx context.Context) (string, error) {
	name := fmt.Sprintf("%s%s-%s.csv",
		config.ExportFilePrefix,
		e.now().UTC().Format(config.ExportTimeLayout),
		uuid.NewString()[:8],
	)
	path := filepath.Join(e.dir, name)
	if _, err := e.WriteFile(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}
