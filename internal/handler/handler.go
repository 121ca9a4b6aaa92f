package handler

import (
	"context"
	"sync"
	"time"

	"github.com/set-night/rsvpbot/internal/service"
	"github.com/set-night/rsvpbot/internal/telegram"
)

// Handler drives the registration conversation and the admin commands.
type Handler struct {
	sender      telegram.Sender
	guests      service.GuestStore
	admins      service.AdminSet
	sessions    *service.SessionStore
	auth        *service.Authorizer
	exporter    *service.Exporter
	broadcaster *service.Broadcaster
	partyInfo   *service.PartyInfo
	tgLogger    *telegram.TelegramLogger
	now         func() time.Time

	// baseCtx bounds background broadcast runs; runs tracks them.
	baseCtx context.Context
	runs    sync.WaitGroup
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Sender      telegram.Sender
	Guests      service.GuestStore
	Admins      service.AdminSet
	Sessions    *service.SessionStore
	Auth        *service.Authorizer
	Exporter    *service.Exporter
	Broadcaster *service.Broadcaster
	PartyInfo   *service.PartyInfo
	TgLogger    *telegram.TelegramLogger
	// BaseContext is the process lifetime context. Broadcasts run on it
	// instead of the per-update context.
	BaseContext context.Context
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	sessions := deps.Sessions
	if sessions == nil {
		sessions = service.NewSessionStore()
	}
	partyInfo := deps.PartyInfo
	if partyInfo == nil {
		partyInfo = service.NewPartyInfo("", "")
	}
	baseCtx := deps.BaseContext
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Handler{
		sender:      deps.Sender,
		guests:      deps.Guests,
		admins:      deps.Admins,
		sessions:    sessions,
		auth:        deps.Auth,
		exporter:    deps.Exporter,
		broadcaster: deps.Broadcaster,
		partyInfo:   partyInfo,
		tgLogger:    deps.TgLogger,
		now:         func() time.Time { return time.Now().UTC() },
		baseCtx:     baseCtx,
	}
}

// Wait blocks until every background broadcast has finished.
func (h *Handler) Wait() {
	h.runs.Wait()
}
