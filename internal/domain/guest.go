package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle state carried by every guest record.
type Status string

const (
	StatusActive  Status = "Active"
	StatusDeleted Status = "Deleted"
)

// ParseStatus maps a stored status to a Status. Anything other than
// "Deleted" (case-insensitive), including an empty value, is Active.
func ParseStatus(s string) Status {
	if strings.EqualFold(strings.TrimSpace(s), string(StatusDeleted)) {
		return StatusDeleted
	}
	return StatusActive
}

// GuestRecord is one immutable state change of a guest. A change is
// expressed by appending a new record with the same identity.
type GuestRecord struct {
	ChatID       int64
	UserID       int64
	Timestamp    time.Time
	Language     string
	FullName     string
	AvecFullName string
	Username     string
	AvecUsername string
	Status       Status
}

// Key returns the replay identity: the user id when known, the chat id otherwise.
func (r GuestRecord) Key() int64 {
	return IdentityKey(r.UserID, r.ChatID)
}

// IsActive reports whether the record describes a current registration.
func (r GuestRecord) IsActive() bool {
	return r.Status != StatusDeleted
}

// HasAvec reports whether the record names a companion.
func (r GuestRecord) HasAvec() bool {
	return strings.TrimSpace(r.AvecFullName) != ""
}

// WithoutAvec returns a copy with the companion cleared, marked Active
// and stamped at ts.
func (r GuestRecord) WithoutAvec(ts time.Time) GuestRecord {
	r.AvecFullName = ""
	r.AvecUsername = ""
	r.Status = StatusActive
	r.Timestamp = ts
	return r
}

// IdentityKey picks userID if nonzero, else chatID.
func IdentityKey(userID, chatID int64) int64 {
	if userID != 0 {
		return userID
	}
	return chatID
}
