package domain

import "time"

// Step is a state of the registration conversation.
type Step int

const (
	StepNone Step = iota
	StepAskLanguage
	StepAskAction
	StepAskFullName
	StepAskPlusOne
	StepAskAvecName
	StepAskAvecHandle
	StepChangeAvecName
	StepChangeAvecHandle
	StepCompleted
)

var stepNames = map[Step]string{
	StepNone:             "none",
	StepAskLanguage:      "ask_language",
	StepAskAction:        "ask_action",
	StepAskFullName:      "ask_full_name",
	StepAskPlusOne:       "ask_plus_one",
	StepAskAvecName:      "ask_avec_name",
	StepAskAvecHandle:    "ask_avec_handle",
	StepChangeAvecName:   "change_avec_name",
	StepChangeAvecHandle: "change_avec_handle",
	StepCompleted:        "completed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Session is the in-memory conversation state of one chat.
type Session struct {
	ChatID       int64
	UserID       int64
	Username     string
	Language     string
	Step         Step
	FullName     string
	WantsPlusOne bool
	AvecFullName string
	AvecUsername string
}

func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, Step: StepAskLanguage}
}

// Lang returns the session language, defaulting to English.
func (s *Session) Lang() string {
	if s.Language == "" {
		return "en"
	}
	return s.Language
}

// Restart clears the registration answers and returns to the language prompt.
func (s *Session) Restart() {
	s.Step = StepAskLanguage
	s.Language = ""
	s.FullName = ""
	s.ClearAvec()
}

// ClearAvec drops the companion answers.
func (s *Session) ClearAvec() {
	s.WantsPlusOne = false
	s.AvecFullName = ""
	s.AvecUsername = ""
}

// Hydrate replaces the answers with those of a persisted active record and
// marks the conversation completed.
func (s *Session) Hydrate(rec GuestRecord) {
	s.Step = StepCompleted
	s.Language = rec.Language
	s.FullName = rec.FullName
	s.WantsPlusOne = rec.HasAvec()
	s.AvecFullName = rec.AvecFullName
	s.AvecUsername = rec.AvecUsername
}

// Record builds the guest record this session would commit. Companion
// fields are only carried for an Active record with a companion wanted.
func (s *Session) Record(status Status, ts time.Time) GuestRecord {
	rec := GuestRecord{
		ChatID:    s.ChatID,
		UserID:    s.UserID,
		Timestamp: ts,
		Language:  s.Lang(),
		FullName:  s.FullName,
		Username:  s.Username,
		Status:    status,
	}
	if status == StatusActive && s.WantsPlusOne {
		rec.AvecFullName = s.AvecFullName
		rec.AvecUsername = s.AvecUsername
	}
	return rec
}
