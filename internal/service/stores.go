package service

import (
	"context"

	"github.com/set-night/rsvpbot/internal/domain"
)

// GuestStore is the guest record event log.
type GuestStore interface {
	Append(ctx context.Context, rec domain.GuestRecord) error
	LatestFor(ctx context.Context, userID, chatID int64) (domain.GuestRecord, bool, error)
	Roster(ctx context.Context) (*domain.Roster, error)
	UnlinkCompanionByHandle(ctx context.Context, handle string) (int, error)
}

// AdminSet is the persisted per-group admin id set.
type AdminSet interface {
	Get(ctx context.Context, groupID int64) ([]int64, error)
	Contains(ctx context.Context, groupID, userID int64) (bool, error)
	Add(ctx context.Context, groupID, userID int64) (bool, error)
	Remove(ctx context.Context, groupID, userID int64) (bool, error)
}
