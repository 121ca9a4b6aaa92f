// Package i18n holds the English and Finnish strings of the bot and the
// localized tokens it accepts as answers.
package i18n

import (
	"fmt"
	"strings"
)

const (
	English = "en"
	Finnish = "fi"
)

// Key identifies a localized message.
type Key string

const (
	ChooseLanguage      Key = "choose_language"
	ChooseLanguageRetry Key = "choose_language_retry"
	WhatToDo            Key = "what_to_do"
	AskFullName         Key = "ask_full_name"
	InvalidFullName     Key = "invalid_full_name"
	AskPlusOne          Key = "ask_plus_one"
	AnswerYesNo         Key = "answer_yes_no"
	AskAvecName         Key = "ask_avec_name"
	InvalidAvecName     Key = "invalid_avec_name"
	AskAvecHandle       Key = "ask_avec_handle"
	InvalidAvecHandle   Key = "invalid_avec_handle"
	ChangeAvecName      Key = "change_avec_name"
	InvalidChangeAvec   Key = "invalid_change_avec"
	Saved               Key = "saved"
	SignedUpMenu        Key = "signed_up_menu"
	SignedOut           Key = "signed_out"
	StartOver           Key = "start_over"
	FinishSignupFirst   Key = "finish_signup_first"
	NotAuthorizedCmd    Key = "not_authorized_command"
	NotAuthorizedOption Key = "not_authorized_option"
	BroadcastNeedsReply Key = "broadcast_needs_reply"
	BroadcastButtonHint Key = "broadcast_button_hint"
	BroadcastDone       Key = "broadcast_done"
	ExportReady         Key = "export_ready"
	ExportFailed        Key = "export_failed"
	PartyInfoMissing    Key = "party_info_missing"
	SlowDown            Key = "slow_down"
	NoAvec              Key = "no_avec"
	SaveFailed          Key = "save_failed"
)

var messages = map[string]map[Key]string{
	English: {
		ChooseLanguage:      "Choose language / Valitse kieli: fi or en",
		ChooseLanguageRetry: "Choose your language / Valitse kieli",
		WhatToDo:            "What would you like to do?",
		AskFullName:         "Please enter your full name (first and last):",
		InvalidFullName:     "Enter a real first and last name (letters only).",
		AskPlusOne:          "Do you want a +1 (avec)? yes/no",
		AnswerYesNo:         "Please answer yes or no.",
		AskAvecName:         "Enter your +1's full name (first and last), or share their contact card:",
		InvalidAvecName:     "Enter a real first and last name for your +1.",
		AskAvecHandle:       "Optional: enter your +1's @handle (or type 'skip').",
		InvalidAvecHandle:   "Invalid handle. Use @name (5-32 letters/digits/_), or type 'skip'.",
		ChangeAvecName:      "Send your +1's full name, or type 'none' to remove.",
		InvalidChangeAvec:   "Enter a real first and last name, or 'none' to remove.",
		Saved:               "Thanks! Saved.\nName: %s\nAvec: %s\nLanguage: %s.",
		SignedUpMenu:        "You are signed up. Choose an option:",
		SignedOut:           "Your signup has been removed. Send /start to sign up again.",
		StartOver:           "You can start over by pressing /start.",
		FinishSignupFirst:   "Complete your signup first. Send /start.",
		NotAuthorizedCmd:    "You are not authorized to use this command.",
		NotAuthorizedOption: "You are not authorized to use this option.",
		BroadcastNeedsReply: "Reply to the message you want to send, then type /broadcast.",
		BroadcastButtonHint: "Reply to the message you want to send, then tap Broadcast.",
		BroadcastDone:       "Broadcast done. Sent: %d, failed: %d",
		ExportReady:         "RSVP export ready",
		ExportFailed:        "Export failed. Try again later.",
		PartyInfoMissing:    "Party info is not available.",
		SlowDown:            "Too many messages. Please wait a moment.",
		NoAvec:              "—",
		SaveFailed:          "Could not save your signup. Please try again.",
	},
	Finnish: {
		ChooseLanguage:      "Choose language / Valitse kieli: fi or en",
		ChooseLanguageRetry: "Choose your language / Valitse kieli",
		WhatToDo:            "Mitä haluaisit tehdä?",
		AskFullName:         "Kirjoita koko nimesi (etu- ja sukunimi):",
		InvalidFullName:     "Anna oikea etu- ja sukunimi (vain kirjaimet).",
		AskPlusOne:          "Haluatko avecin? kyllä/ei",
		AnswerYesNo:         "Vastaa kyllä tai ei.",
		AskAvecName:         "Anna avecin koko nimi (etu- ja sukunimi), tai jaa hänen yhteystietonsa:",
		InvalidAvecName:     "Anna avecille oikea etu- ja sukunimi.",
		AskAvecHandle:       "Valinnainen: anna avecin @tunnus (tai kirjoita 'ohita').",
		InvalidAvecHandle:   "Virheellinen tunnus. Käytä @nimi (5-32 merkkiä), tai kirjoita 'ohita'.",
		ChangeAvecName:      "Lähetä avecin koko nimi tai kirjoita 'ei' poistaaksesi.",
		InvalidChangeAvec:   "Anna oikea etu- ja sukunimi tai 'ei' poistaaksesi.",
		Saved:               "Kiitos! Tallennettu.\nNimi: %s\nAvec: %s\nKieli: %s.",
		SignedUpMenu:        "Olet ilmoittautunut. Valitse toiminto:",
		SignedOut:           "Ilmoittautuminen poistettu. Lähetä /start ilmoittautuaksesi uudelleen.",
		StartOver:           "Voit aloittaa alusta painamalla /start.",
		FinishSignupFirst:   "Viimeistele ilmoittautuminen ensin. Lähetä /start.",
		NotAuthorizedCmd:    "Ei oikeuksia tähän komentoon.",
		NotAuthorizedOption: "Ei oikeuksia tähän toimintoon.",
		BroadcastNeedsReply: "Vastaa viestiin jonka haluat lähettää ja kirjoita /broadcast.",
		BroadcastButtonHint: "Vastaa viestiin jonka haluat lähettää ja paina Lähetä kaikille.",
		BroadcastDone:       "Lähetys valmis. Onnistui: %d, epäonnistui: %d",
		ExportReady:         "RSVP-vienti valmis",
		ExportFailed:        "Vienti epäonnistui. Yritä myöhemmin uudelleen.",
		PartyInfoMissing:    "Juhlatietoja ei ole saatavilla.",
		SlowDown:            "Liian monta viestiä. Odota hetki.",
		NoAvec:              "—",
		SaveFailed:          "Ilmoittautumista ei voitu tallentaa. Yritä uudelleen.",
	},
}

// T returns the message for key in lang, falling back to English.
func T(lang string, key Key, args ...any) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[English]
	}
	msg, ok := table[key]
	if !ok {
		msg = messages[English][key]
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// ParseLanguage accepts "fi" or "en" in any case.
func ParseLanguage(input string) (string, bool) {
	lang := strings.ToLower(strings.TrimSpace(input))
	if lang == English || lang == Finnish {
		return lang, true
	}
	return "", false
}

// ParseYesNo reads a yes/no answer. Finnish sessions also accept the
// English words.
func ParseYesNo(lang, input string) (yes bool, ok bool) {
	v := strings.ToLower(strings.TrimSpace(input))
	if lang == Finnish {
		switch v {
		case "kyllä", "kylla", "k", "joo", "yes", "y":
			return true, true
		case "ei", "e", "no", "n":
			return false, true
		}
		return false, false
	}
	switch v {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	}
	return false, false
}

// IsCancelAvec reports whether input drops the companion.
func IsCancelAvec(lang, input string) bool {
	v := strings.ToLower(strings.TrimSpace(input))
	if lang == Finnish {
		switch v {
		case "ei", "peru", "peruuta", "poista":
			return true
		}
		return false
	}
	switch v {
	case "none", "no", "cancel", "remove":
		return true
	}
	return false
}

// IsSkip reports whether input skips the optional companion handle.
func IsSkip(input string) bool {
	v := strings.TrimSpace(input)
	return strings.EqualFold(v, "skip") || strings.EqualFold(v, "ohita")
}
