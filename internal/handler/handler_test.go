package handler

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/repository"
	"github.com/set-night/rsvpbot/internal/service"
	"github.com/set-night/rsvpbot/internal/telegram/mocks"
)

const (
	superAdminID int64 = 1
	groupID      int64 = -1001
)

type sentText struct {
	chatID int64
	text   string
	markup models.ReplyMarkup
}

type fixture struct {
	t       *testing.T
	dir     string
	h       *Handler
	log     *repository.GuestLog
	admins  *repository.AdminStore
	sender  *mocks.MockSender
	sent    []sentText
	partyTx string
	pacing  time.Duration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		t:      t,
		dir:    dir,
		log:    repository.NewGuestLog(filepath.Join(dir, "rsvps.jsonl")),
		admins: repository.NewAdminStore(filepath.Join(dir, "group_admins.json")),
		sender: mocks.NewMockSender(gomock.NewController(t)),
	}
	f.sender.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chatID int64, text string, markup models.ReplyMarkup) error {
			f.sent = append(f.sent, sentText{chatID: chatID, text: text, markup: markup})
			return nil
		}).AnyTimes()
	f.h = f.build(f.log)
	return f
}

// build wires a handler over store with a fresh session store, as after a
// process restart.
func (f *fixture) build(store service.GuestStore) *Handler {
	h := New(Deps{
		Sender:      f.sender,
		Guests:      store,
		Admins:      f.admins,
		Auth:        service.NewAuthorizer(superAdminID, "", groupID, f.admins),
		Exporter:    service.NewExporter(store, f.dir),
		Broadcaster: service.NewBroadcaster(store, f.sender, f.pacing),
		PartyInfo:   service.NewPartyInfo(f.partyTx, ""),
	})
	return h
}

func (f *fixture) private(userID int64, username, text string) *models.Update {
	return &models.Update{Message: &models.Message{
		ID:   1,
		Chat: models.Chat{ID: userID, Type: models.ChatTypePrivate},
		From: &models.User{ID: userID, Username: username},
		Text: text,
	}}
}

func (f *fixture) say(userID int64, username string, texts ...string) {
	f.t.Helper()
	for _, text := range texts {
		f.h.HandleUpdate(context.Background(), nil, f.private(userID, username, text))
	}
}

func (f *fixture) lastText() string {
	f.t.Helper()
	require.NotEmpty(f.t, f.sent)
	return f.sent[len(f.sent)-1].text
}

func (f *fixture) texts() []string {
	out := make([]string, len(f.sent))
	for i, s := range f.sent {
		out[i] = s.text
	}
	return out
}

func (f *fixture) session(chatID int64) *domain.Session {
	sess, _ := f.h.sessions.GetOrCreate(chatID)
	return sess
}

func (f *fixture) latest(userID, chatID int64) domain.GuestRecord {
	f.t.Helper()
	rec, ok, err := f.log.LatestFor(context.Background(), userID, chatID)
	require.NoError(f.t, err)
	require.True(f.t, ok)
	return rec
}

func (f *fixture) records() []domain.GuestRecord {
	f.t.Helper()
	var out []domain.GuestRecord
	require.NoError(f.t, f.log.Scan(context.Background(), func(rec domain.GuestRecord) {
		out = append(out, rec)
	}))
	return out
}

// failingStore rejects every write.
type failingStore struct {
	service.GuestStore
	err error
}

func (s failingStore) Append(context.Context, domain.GuestRecord) error {
	return s.err
}

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}
