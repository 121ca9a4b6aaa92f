package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/telegram/mocks"
)

func TestRecipientsIncludeResolvedCompanions(t *testing.T) {
	alice := guest(1, 100, t0, "Alice One")
	alice.AvecFullName = "Bob Friend"
	alice.AvecUsername = "bob_friend"

	// Bob registered earlier under his handle, then signed out.
	bob := guest(2, 200, t0, "Bob Friend")
	bob.Username = "Bob_Friend"
	bobGone := bob
	bobGone.Timestamp = t0.Add(time.Minute)
	bobGone.Status = domain.StatusDeleted

	carol := guest(3, 300, t0, "Carol Three")
	carol.AvecFullName = "Unknown Person"
	carol.AvecUsername = "nobody_here"

	dave := guest(4, 400, t0, "Dave Four")
	daveGone := dave
	daveGone.Timestamp = t0.Add(time.Minute)
	daveGone.Status = domain.StatusDeleted

	log := newGuestLog(t, alice, bob, bobGone, carol, dave, daveGone, guest(1, 100, t0.Add(-time.Hour), "Alice Old"))

	got, err := NewBroadcaster(log, nil, 0).Recipients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestRecipientsAreDistinct(t *testing.T) {
	alice := guest(1, 100, t0, "Alice One")
	alice.AvecFullName = "Bob Friend"
	alice.AvecUsername = "bob_friend"
	bob := guest(2, 200, t0, "Bob Friend")
	bob.Username = "bob_friend"
	carol := guest(3, 300, t0, "Carol Three")
	carol.AvecFullName = "Bob Friend"
	carol.AvecUsername = "bob_friend"

	got, err := NewBroadcaster(newGuestLog(t, alice, bob, carol), nil, 0).Recipients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestRunCountsFailuresAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	log := newGuestLog(t, guest(1, 100, t0, "Alice One"), guest(2, 200, t0, "Bob Two"), guest(3, 300, t0, "Carol Three"))

	gomock.InOrder(
		sender.EXPECT().CopyMessage(gomock.Any(), int64(1), int64(-99), 7).Return(nil),
		sender.EXPECT().CopyMessage(gomock.Any(), int64(2), int64(-99), 7).Return(errors.New("bot was blocked by the user")),
		sender.EXPECT().CopyMessage(gomock.Any(), int64(3), int64(-99), 7).Return(nil),
	)

	result, err := NewBroadcaster(log, sender, time.Millisecond).Run(context.Background(), -99, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.NotEmpty(t, result.RunID)
}

func TestRunWithEmptyLogSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	result, err := NewBroadcaster(newGuestLog(t), sender, 0).Run(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Failed)
}

func TestRunStopsOnCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	log := newGuestLog(t, guest(1, 100, t0, "Alice One"), guest(2, 200, t0, "Bob Two"))

	ctx, cancel := context.WithCancel(context.Background())
	sender.EXPECT().CopyMessage(gomock.Any(), int64(1), int64(5), 1).
		DoAndReturn(func(context.Context, int64, int64, int) error {
			cancel()
			return nil
		})

	result, err := NewBroadcaster(log, sender, time.Hour).Run(ctx, 5, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, result.Sent)
}
