package handler

import (
	"context"
	"log/slog"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/i18n"
	"github.com/set-night/rsvpbot/internal/telegram"
)

// SignOut appends a Deleted record for the guest and offers a restart.
func (h *Handler) SignOut(ctx context.Context, sess *domain.Session) {
	rec := sess.Record(domain.StatusDeleted, h.now())
	if err := h.guests.Append(ctx, rec); err != nil {
		h.storageFailed(ctx, sess, err, "sign out")
		return
	}
	h.tgLogger.LogSignOut(rec.UserID, rec.ChatID, rec.FullName)

	sess.Step = domain.StepCompleted
	sess.ClearAvec()

	lang := sess.Lang()
	h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.SignedOut), nil)
	h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.StartOver), telegram.ReplyKeyboard(telegram.ButtonRow("/start")))
}

func (h *Handler) unlinkCompanion(ctx context.Context, handle string) {
	count, err := h.guests.UnlinkCompanionByHandle(ctx, handle)
	if err != nil {
		slog.Error("unlink companion handle", "handle", handle, "error", err)
		h.tgLogger.LogError(err, "unlink companion @"+handle)
		return
	}
	if count > 0 {
		slog.Info("companion links cleared", "handle", handle, "count", count)
		h.tgLogger.LogUnlink(handle, count)
	}
}

func (h *Handler) storageFailed(ctx context.Context, sess *domain.Session, err error, op string) {
	slog.Error("guest store write failed", "op", op, "chat_id", sess.ChatID, "user_id", sess.UserID, "error", err)
	h.tgLogger.LogError(err, op)
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.SaveFailed), nil)
}
