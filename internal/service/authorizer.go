package service

import (
	"context"
	"log/slog"

	"github.com/set-night/rsvpbot/internal/domain"
)

// Caller identifies who sent an update and where.
type Caller struct {
	UserID   int64
	Username string
	ChatID   int64
	Private  bool
}

type Authorizer struct {
	superID     int64
	superHandle string
	groupID     int64
	admins      AdminSet
}

func NewAuthorizer(superID int64, superHandle string, groupID int64, admins AdminSet) *Authorizer {
	return &Authorizer{
		superID:     superID,
		superHandle: domain.CanonicalHandle(superHandle),
		groupID:     groupID,
		admins:      admins,
	}
}

func (a *Authorizer) GroupID() int64 {
	return a.groupID
}

// IsSuperAdmin matches the configured id, or the configured handle
// ignoring case and a leading @.
func (a *Authorizer) IsSuperAdmin(userID int64, username string) bool {
	if a.superID != 0 && userID == a.superID {
		return true
	}
	return a.superHandle != "" && domain.CanonicalHandle(username) == a.superHandle
}

// IsAdmin is true for the superadmin anywhere, and for group admins inside
// the configured group.
func (a *Authorizer) IsAdmin(ctx context.Context, c Caller) bool {
	if a.IsSuperAdmin(c.UserID, c.Username) {
		return true
	}
	if c.Private || a.groupID == 0 || c.ChatID != a.groupID || c.UserID == 0 {
		return false
	}
	ok, err := a.admins.Contains(ctx, a.groupID, c.UserID)
	if err != nil {
		slog.Error("check group admin", "user_id", c.UserID, "error", err)
		return false
	}
	return ok
}

// InScope reports whether an update from chatID should be handled at all.
// Private chats always are; other chats only when they are the configured
// group.
func (a *Authorizer) InScope(chatID int64, private bool) bool {
	return private || (a.groupID != 0 && chatID == a.groupID)
}
