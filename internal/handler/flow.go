package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/i18n"
	"github.com/set-night/rsvpbot/internal/telegram"
)

func (h *Handler) OnLanguage(ctx context.Context, sess *domain.Session, text string) {
	lang, ok := i18n.ParseLanguage(text)
	if !ok {
		h.askLanguage(ctx, sess, true)
		return
	}

	sess.Language = lang
	sess.Step = domain.StepAskAction
	h.sendActionMenu(ctx, sess)
}

func (h *Handler) OnAction(ctx context.Context, sess *domain.Session, text string) {
	lang := sess.Lang()
	switch {
	case isSignUpLabel(lang, text):
		sess.Step = domain.StepAskFullName
		h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.AskFullName), nil)
	case isPartyInfoLabel(lang, text):
		if h.partyInfo.Available() {
			h.showPartyInfo(ctx, sess)
		}
		h.sendActionMenu(ctx, sess)
	default:
		h.sendActionMenu(ctx, sess)
	}
}

func (h *Handler) OnFullName(ctx context.Context, sess *domain.Session, text string) {
	if !domain.LooksLikeRealName(text) {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.InvalidFullName), nil)
		return
	}

	sess.FullName = domain.NormalizeName(text)
	sess.Step = domain.StepAskPlusOne

	yes, no := i18n.YesNoLabels(sess.Lang())
	kb := telegram.OneTimeKeyboard(telegram.ButtonRow(yes, no))
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.AskPlusOne), kb)
}

func (h *Handler) OnPlusOne(ctx context.Context, sess *domain.Session, text string) {
	yes, ok := i18n.ParseYesNo(sess.Lang(), text)
	if !ok {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.AnswerYesNo), nil)
		return
	}

	sess.WantsPlusOne = yes
	if !yes {
		h.SaveAndConfirm(ctx, sess)
		return
	}
	sess.Step = domain.StepAskAvecName
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.AskAvecName), nil)
}

func (h *Handler) OnAvecName(ctx context.Context, sess *domain.Session, text string) {
	if i18n.IsCancelAvec(sess.Lang(), text) {
		sess.ClearAvec()
		h.SaveAndConfirm(ctx, sess)
		return
	}
	if !domain.LooksLikeRealName(text) {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.InvalidAvecName), nil)
		return
	}

	sess.AvecFullName = domain.NormalizeName(text)
	sess.Step = domain.StepAskAvecHandle
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.AskAvecHandle), nil)
}

func (h *Handler) OnAvecHandle(ctx context.Context, sess *domain.Session, text string) {
	h.onHandle(ctx, sess, text)
}

func (h *Handler) OnChangeAvecName(ctx context.Context, sess *domain.Session, text string) {
	if i18n.IsCancelAvec(sess.Lang(), text) {
		sess.ClearAvec()
		h.SaveAndConfirm(ctx, sess)
		return
	}
	if !domain.LooksLikeRealName(text) {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.InvalidChangeAvec), nil)
		return
	}

	sess.WantsPlusOne = true
	sess.AvecFullName = domain.NormalizeName(text)
	sess.AvecUsername = ""
	sess.Step = domain.StepChangeAvecHandle
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.AskAvecHandle), nil)
}

func (h *Handler) OnChangeAvecHandle(ctx context.Context, sess *domain.Session, text string) {
	h.onHandle(ctx, sess, text)
}

// onHandle completes either companion sub-flow: skip commits without a
// handle, a valid handle commits with it.
func (h *Handler) onHandle(ctx context.Context, sess *domain.Session, text string) {
	if i18n.IsSkip(text) {
		sess.AvecUsername = ""
		h.SaveAndConfirm(ctx, sess)
		return
	}
	handle, err := domain.NormalizeHandle(text)
	if err != nil {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.InvalidAvecHandle), nil)
		return
	}
	sess.AvecUsername = handle
	h.SaveAndConfirm(ctx, sess)
}

// OnContact takes the companion name from a shared contact card.
func (h *Handler) OnContact(ctx context.Context, sess *domain.Session, contact *models.Contact) {
	name := strings.TrimSpace(contact.FirstName + " " + contact.LastName)
	if name == "" {
		h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.InvalidAvecName), nil)
		return
	}

	sess.WantsPlusOne = true
	sess.AvecFullName = domain.NormalizeName(domain.CleanInput(name))
	sess.AvecUsername = ""
	if sess.Step == domain.StepChangeAvecName {
		sess.Step = domain.StepChangeAvecHandle
	} else {
		sess.Step = domain.StepAskAvecHandle
	}
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.AskAvecHandle), nil)
}

func (h *Handler) startChangeAvec(ctx context.Context, sess *domain.Session) {
	sess.Step = domain.StepChangeAvecName
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.ChangeAvecName), nil)
}

// SaveAndConfirm commits the session as an Active record, releases any
// companion links that point at the guest's own handle, then confirms.
// On a failed write the session keeps its step so the answer can be
// resent.
func (h *Handler) SaveAndConfirm(ctx context.Context, sess *domain.Session) {
	rec := sess.Record(domain.StatusActive, h.now())
	if err := h.guests.Append(ctx, rec); err != nil {
		h.storageFailed(ctx, sess, err, "save signup")
		return
	}
	sess.Step = domain.StepCompleted
	h.tgLogger.LogRegistration(rec.UserID, rec.ChatID, rec.FullName, rec.AvecFullName)

	if handle := domain.CanonicalHandle(sess.Username); handle != "" {
		h.unlinkCompanion(ctx, handle)
	}

	avec := rec.AvecFullName
	if avec == "" {
		avec = i18n.T(sess.Lang(), i18n.NoAvec)
	}
	h.reply(ctx, sess.ChatID, i18n.T(sess.Lang(), i18n.Saved, rec.FullName, avec, rec.Language), nil)
	h.sendCompletedMenu(ctx, sess)
}
