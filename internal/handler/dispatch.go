package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/i18n"
	"github.com/set-night/rsvpbot/internal/service"
)

// Commands published in the bot menu.
var Commands = []models.BotCommand{
	{Command: "start", Description: "Sign up or show your signup"},
	{Command: "info", Description: "Party info"},
	{Command: "avec", Description: "Change your +1"},
	{Command: "removeme", Description: "Remove your signup"},
}

// request is one inbound message with the state it is handled against.
type request struct {
	msg     *models.Message
	text    string
	cmd     string
	private bool
	sess    *domain.Session
}

func (r *request) caller() service.Caller {
	return service.Caller{
		UserID:   r.sess.UserID,
		Username: r.sess.Username,
		ChatID:   r.sess.ChatID,
		Private:  r.private,
	}
}

// HandleUpdate is the bot's default handler. Updates from chats outside
// the configured scope are expected to be dropped by middleware.
func (h *Handler) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	msg := update.Message

	sess, _ := h.sessions.GetOrCreate(msg.Chat.ID)
	if msg.From != nil {
		sess.UserID = msg.From.ID
		sess.Username = msg.From.Username
	}

	text := domain.CleanInput(msg.Text)
	req := &request{
		msg:     msg,
		text:    text,
		cmd:     commandOf(text),
		private: msg.Chat.Type == models.ChatTypePrivate,
		sess:    sess,
	}
	lang := sess.Lang()

	// The group chat shares one session, so nothing there may start or
	// hydrate a signup.
	if req.cmd == "/start" {
		if req.private {
			h.handleStart(ctx, req)
		}
		return
	}

	if req.private && msg.Contact != nil && (sess.Step == domain.StepAskAvecName || sess.Step == domain.StepChangeAvecName) {
		h.OnContact(ctx, sess, msg.Contact)
		return
	}

	switch {
	case req.cmd == "/export":
		h.handleExport(ctx, req, i18n.NotAuthorizedCmd)
		return
	case req.cmd == "/broadcast":
		h.handleBroadcast(ctx, req, i18n.NotAuthorizedCmd, i18n.BroadcastNeedsReply)
		return
	case isExportLabel(lang, text):
		h.handleExport(ctx, req, i18n.NotAuthorizedOption)
		return
	case isBroadcastLabel(lang, text):
		h.handleBroadcast(ctx, req, i18n.NotAuthorizedOption, i18n.BroadcastButtonHint)
		return
	case req.cmd == "/whoami":
		h.handleWhoAmI(ctx, req)
		return
	case req.cmd == "/groupadmins" && req.private:
		h.handleGroupAdmins(ctx, req)
		return
	}

	if req.private && sess.Step == domain.StepCompleted {
		if isChangeAvecCommand(lang, text) {
			h.startChangeAvec(ctx, sess)
			return
		}
		if isRemoveSignupCommand(lang, text) {
			h.SignOut(ctx, sess)
			return
		}
	}

	if req.cmd == "/info" {
		h.showPartyInfo(ctx, sess)
		return
	}

	// Group chats only get the commands above.
	if !req.private {
		return
	}

	switch req.cmd {
	case "/removeme", "/signout":
		if sess.Step != domain.StepCompleted {
			h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.FinishSignupFirst), nil)
			return
		}
		h.SignOut(ctx, sess)
		return
	case "/avec":
		if sess.Step != domain.StepCompleted {
			h.reply(ctx, sess.ChatID, i18n.T(lang, i18n.FinishSignupFirst), nil)
			return
		}
		h.startChangeAvec(ctx, sess)
		return
	}

	switch sess.Step {
	case domain.StepAskLanguage:
		h.OnLanguage(ctx, sess, text)
	case domain.StepAskAction:
		h.OnAction(ctx, sess, text)
	case domain.StepAskFullName:
		h.OnFullName(ctx, sess, text)
	case domain.StepAskPlusOne:
		h.OnPlusOne(ctx, sess, text)
	case domain.StepAskAvecName:
		h.OnAvecName(ctx, sess, text)
	case domain.StepAskAvecHandle:
		h.OnAvecHandle(ctx, sess, text)
	case domain.StepChangeAvecName:
		h.OnChangeAvecName(ctx, sess, text)
	case domain.StepChangeAvecHandle:
		h.OnChangeAvecHandle(ctx, sess, text)
	case domain.StepCompleted:
		h.sendCompletedMenu(ctx, sess)
	default:
		sess.Restart()
		h.askLanguage(ctx, sess, false)
	}
}

// commandOf returns the lower-cased slash command of text without any
// @botname suffix, or "" when text is not a command.
func commandOf(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}
