package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/i18n"
	"github.com/set-night/rsvpbot/internal/service"
	"github.com/set-night/rsvpbot/internal/telegram"
)

func (h *Handler) reply(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	if err := h.sender.SendText(ctx, chatID, text, markup); err != nil {
		slog.Error("send message", "chat_id", chatID, "error", err)
	}
}

// menuCaller is the caller a menu is built for. Menus are only shown in
// private chats.
func menuCaller(sess *domain.Session) service.Caller {
	return service.Caller{UserID: sess.UserID, Username: sess.Username, ChatID: sess.ChatID, Private: true}
}

func (h *Handler) askLanguage(ctx context.Context, sess *domain.Session, retry bool) {
	rows := [][]models.KeyboardButton{telegram.ButtonRow(i18n.Finnish, i18n.English)}
	if h.auth.IsAdmin(ctx, menuCaller(sess)) {
		rows = append(rows, telegram.ButtonRow(i18n.BroadcastLabel(sess.Lang())))
	}

	key := i18n.ChooseLanguage
	if retry {
		key = i18n.ChooseLanguageRetry
	}
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), key), telegram.OneTimeKeyboard(rows...))
}

func (h *Handler) sendActionMenu(ctx context.Context, sess *domain.Session) {
	lang := sess.Lang()
	first := []string{i18n.SignUpLabel(lang)}
	if h.partyInfo.Available() {
		first = append(first, i18n.PartyInfoLabel(lang))
	}

	rows := [][]models.KeyboardButton{telegram.ButtonRow(first...)}
	if h.auth.IsAdmin(ctx, menuCaller(sess)) {
		rows = append(rows, telegram.ButtonRow(i18n.ExportLabel(lang), i18n.BroadcastLabel(lang)))
	}
	h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.WhatToDo), telegram.ReplyKeyboard(rows...))
}

func (h *Handler) sendCompletedMenu(ctx context.Context, sess *domain.Session) {
	lang := sess.Lang()
	row := []string{i18n.ChangeAvecLabel(lang), i18n.RemoveSignupLabel(lang)}
	if h.auth.IsAdmin(ctx, menuCaller(sess)) {
		row = append(row, i18n.ExportLabel(lang), i18n.BroadcastLabel(lang))
	}

	kb := telegram.ReplyKeyboard(telegram.ButtonRow(row...), telegram.ButtonRow("/start"))
	h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.SignedUpMenu), kb)
}

func matchesAny(input string, options ...string) bool {
	v := strings.TrimSpace(input)
	for _, o := range options {
		if strings.EqualFold(v, o) {
			return true
		}
	}
	return false
}

func isSignUpLabel(lang, input string) bool {
	return matchesAny(input, i18n.SignUpLabel(lang))
}

func isPartyInfoLabel(lang, input string) bool {
	return matchesAny(input, i18n.PartyInfoLabel(lang), "/info")
}

func isChangeAvecCommand(lang, input string) bool {
	if lang == i18n.Finnish {
		return matchesAny(input, i18n.ChangeAvecLabel(lang), "Vaihda avec", "/avec")
	}
	return matchesAny(input, i18n.ChangeAvecLabel(lang), "Change +1", "/avec")
}

func isRemoveSignupCommand(lang, input string) bool {
	return matchesAny(input, i18n.RemoveSignupLabel(lang), "/removeme", "/signout")
}

func isExportLabel(lang, input string) bool {
	return matchesAny(input, i18n.ExportLabel(lang))
}

func isBroadcastLabel(lang, input string) bool {
	return matchesAny(input, i18n.BroadcastLabel(lang))
}
