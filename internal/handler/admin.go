package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/set-night/rsvpbot/internal/i18n"
)

const (
	groupAdminsUsage       = "Usage:\n/groupadmins list\n/groupadmins add <userId>\n/groupadmins remove <userId>"
	groupAdminsUsageChange = "Usage: /groupadmins add <userId> | /groupadmins remove <userId>"
	groupAdminsInvalid     = "Invalid syntax. See /groupadmins list|add|remove"
	groupAdminsNoGroup     = "No group configured. Set GROUP_ID to manage group admins."
	notAuthorizedPlain     = "Not authorized."
)

func (h *Handler) handleExport(ctx context.Context, req *request, denied i18n.Key) {
	lang := req.sess.Lang()
	chatID := req.sess.ChatID
	if !h.auth.IsAdmin(ctx, req.caller()) {
		h.reply(ctx, chatID, i18n.T(lang, denied), nil)
		return
	}

	path, err := h.exporter.ExportFile(ctx)
	if err != nil {
		slog.Error("export guests", "chat_id", chatID, "error", err)
		h.reply(ctx, chatID, i18n.T(lang, i18n.ExportFailed), nil)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Error("open export file", "path", path, "error", err)
		h.reply(ctx, chatID, i18n.T(lang, i18n.ExportFailed), nil)
		return
	}
	defer f.Close()

	if err := h.sender.SendDocument(ctx, chatID, filepath.Base(path), f, i18n.T(lang, i18n.ExportReady)); err != nil {
		slog.Error("send export", "chat_id", chatID, "path", path, "error", err)
		return
	}
	slog.Info("export sent", "chat_id", chatID, "path", path)
}

func (h *Handler) handleBroadcast(ctx context.Context, req *request, denied, needsReply i18n.Key) {
	lang := req.sess.Lang()
	chatID := req.sess.ChatID
	if !h.auth.IsAdmin(ctx, req.caller()) {
		h.reply(ctx, chatID, i18n.T(lang, denied), nil)
		return
	}
	source := req.msg.ReplyToMessage
	if source == nil {
		h.reply(ctx, chatID, i18n.T(lang, needsReply), nil)
		return
	}

	// The fan-out outlives the update that asked for it.
	runCtx := h.baseCtx
	h.runs.Add(1)
	go func() {
		defer h.runs.Done()
		result, err := h.broadcaster.Run(runCtx, chatID, source.ID)
		if err != nil {
			slog.Error("broadcast", "run_id", result.RunID, "chat_id", chatID, "error", err)
		}
		h.tgLogger.LogBroadcast(result.RunID, result.Sent, result.Failed)
		h.reply(context.WithoutCancel(runCtx), chatID, i18n.T(lang, i18n.BroadcastDone, result.Sent, result.Failed), nil)
	}()
}

func (h *Handler) handleWhoAmI(ctx context.Context, req *request) {
	sess := req.sess
	if !h.auth.IsAdmin(ctx, req.caller()) {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.NotAuthorizedCmd), nil)
		return
	}

	username := "-"
	if sess.Username != "" {
		username = "@" + sess.Username
	}
	h.reply(ctx, sess.ChatID, fmt.Sprintf("UserId: %d\nChatId: %d\nUsername: %s", sess.UserID, sess.ChatID, username), nil)
}

// handleGroupAdmins manages the admin set of the configured group:
// /groupadmins list | add <userId> | remove <userId>.
func (h *Handler) handleGroupAdmins(ctx context.Context, req *request) {
	chatID := req.sess.ChatID
	if !h.auth.IsSuperAdmin(req.sess.UserID, req.sess.Username) {
		h.reply(ctx, chatID, notAuthorizedPlain, nil)
		return
	}
	groupID := h.auth.GroupID()
	if groupID == 0 {
		h.reply(ctx, chatID, groupAdminsNoGroup, nil)
		return
	}

	parts := strings.Fields(req.text)
	if len(parts) < 2 {
		h.reply(ctx, chatID, groupAdminsUsage, nil)
		return
	}

	switch sub := strings.ToLower(parts[1]); sub {
	case "list":
		ids, err := h.admins.Get(ctx, groupID)
		if err != nil {
			slog.Error("list group admins", "group_id", groupID, "error", err)
			return
		}
		if len(ids) == 0 {
			h.reply(ctx, chatID, "(empty)", nil)
			return
		}
		lines := lo.Map(ids, func(id int64, _ int) string { return strconv.FormatInt(id, 10) })
		h.reply(ctx, chatID, strings.Join(lines, "\n"), nil)

	case "add", "remove":
		if len(parts) != 3 {
			h.reply(ctx, chatID, groupAdminsUsageChange, nil)
			return
		}
		userID, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			h.reply(ctx, chatID, groupAdminsUsageChange, nil)
			return
		}

		if sub == "add" {
			added, err := h.admins.Add(ctx, groupID, userID)
			if err != nil {
				slog.Error("add group admin", "group_id", groupID, "user_id", userID, "error", err)
				return
			}
			h.reply(ctx, chatID, lo.Ternary(added, "Added", "Already present"), nil)
			return
		}
		removed, err := h.admins.Remove(ctx, groupID, userID)
		if err != nil {
			slog.Error("remove group admin", "group_id", groupID, "user_id", userID, "error", err)
			return
		}
		h.reply(ctx, chatID, lo.Ternary(removed, "Removed", "Not found"), nil)

	default:
		h.reply(ctx, chatID, groupAdminsInvalid, nil)
	}
}
