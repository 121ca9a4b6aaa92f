package handler

import (
	"context"
	"log/slog"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/i18n"
)

// handleStart never creates a registration. When the store holds an active
// registration for the caller the session is rebuilt from it and the
// completed menu is shown; otherwise the conversation restarts.
func (h *Handler) handleStart(ctx context.Context, req *request) {
	sess := req.sess

	latest, found, err := h.guests.LatestFor(ctx, sess.UserID, sess.ChatID)
	if err != nil {
		slog.Error("load latest guest record", "chat_id", sess.ChatID, "user_id", sess.UserID, "error", err)
		if sess.Step == domain.StepCompleted {
			h.sendCompletedMenu(ctx, sess)
			return
		}
	}
	if found && latest.IsActive() {
		sess.Hydrate(latest)
		h.sendCompletedMenu(ctx, sess)
		return
	}

	sess.Restart()
	h.askLanguage(ctx, sess, false)
}

func (h *Handler) showPartyInfo(ctx context.Context, sess *domain.Session) {
	sent, err := h.partyInfo.Send(ctx, h.sender, sess.ChatID)
	if err != nil {
		slog.Error("send party info", "chat_id", sess.ChatID, "error", err)
	}
	if !sent {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.PartyInfoMissing), nil)
	}
}
