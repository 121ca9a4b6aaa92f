package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/repository"
)

const header = "ChatId,UserId,Username,Language,FullName,AvecFullName,AvecUsername,Timestamp"

func TestSnapshotKeepsLatestPerIdentity(t *testing.T) {
	updated := guest(1, 100, t0.Add(time.Minute), "Alice Two")
	updated.AvecFullName = "Bob Friend"
	log := newGuestLog(t, guest(1, 100, t0, "Alice One"), updated)

	var buf bytes.Buffer
	records, err := NewExporter(log, t.TempDir()).Snapshot(context.Background())
	require.NoError(t, err)
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "1,100,,en,Alice Two,Bob Friend,,2026-06-20T18:01:00Z", lines[1])
}

func TestSnapshotDropsDeletedIdentity(t *testing.T) {
	deleted := guest(2, 200, t0.Add(time.Minute), "Carol Two")
	deleted.Status = domain.StatusDeleted
	log := newGuestLog(t, guest(2, 200, t0, "Carol Two"), deleted)

	var buf bytes.Buffer
	records, err := NewExporter(log, t.TempDir()).Snapshot(context.Background())
	require.NoError(t, err)
	require.NoError(t, WriteCSV(&buf, records))

	assert.Equal(t, header+"\n", buf.String())
}

func TestSnapshotOrderFollowsLog(t *testing.T) {
	log := newGuestLog(t,
		guest(3, 300, t0, "Third Guest"),
		guest(1, 100, t0, "First Guest"),
		guest(3, 300, t0.Add(time.Hour), "Third Again"),
	)

	records, err := NewExporter(log, t.TempDir()).Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Third Again", records[0].FullName)
	assert.Equal(t, "First Guest", records[1].FullName)
}

func TestWriteCSVQuotesSpecialValues(t *testing.T) {
	rec := guest(1, 100, t0, `Anna "Annie" Smith`)
	rec.AvecFullName = "Doe, John"
	rec.Username = "anna_smith"

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []domain.GuestRecord{rec}))

	assert.Contains(t, buf.String(), `"Anna ""Annie"" Smith","Doe, John"`)
	assert.Contains(t, buf.String(), ",anna_smith,")
}

func TestWriteFileMissingLogIsHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	log := repository.NewGuestLog(filepath.Join(dir, "absent.jsonl"))
	out := filepath.Join(dir, "out", "export.csv")

	rows, err := NewExporter(log, dir).WriteFile(context.Background(), out)
	require.NoError(t, err)
	assert.Zero(t, rows)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, header+"\n", string(data))
}

func TestExportFileIsTimestamped(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(newGuestLog(t, guest(1, 100, t0, "Alice One")), dir)
	exporter.now = func() time.Time { return t0 }

	path, err := exporter.ExportFile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "rsvps-20260620-180000-"))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alice One")
}
