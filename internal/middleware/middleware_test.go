package middleware

import (
	"context"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/set-night/rsvpbot/internal/service"
	"github.com/set-night/rsvpbot/internal/telegram/mocks"
)

func message(chatID int64, chatType models.ChatType) *models.Update {
	return &models.Update{Message: &models.Message{
		Chat: models.Chat{ID: chatID, Type: chatType},
		From: &models.User{ID: 100},
		Text: "hello",
	}}
}

func counting(calls *int) bot.HandlerFunc {
	return func(context.Context, *bot.Bot, *models.Update) { *calls++ }
}

func TestGroupFilter(t *testing.T) {
	auth := service.NewAuthorizer(0, "", -1001, nil)

	tests := []struct {
		name   string
		update *models.Update
		want   int
	}{
		{"private chat passes", message(5, models.ChatTypePrivate), 1},
		{"configured group passes", message(-1001, models.ChatTypeSupergroup), 1},
		{"other group is dropped", message(-2002, models.ChatTypeGroup), 0},
		{"non-message update is dropped", &models.Update{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			GroupFilter(auth)(counting(&calls))(context.Background(), nil, tt.update)
			assert.Equal(t, tt.want, calls)
		})
	}
}

func TestRateLimitNotifiesWhenExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().SendText(gomock.Any(), int64(5), "Too many messages. Please wait a moment.", gomock.Nil()).Return(nil)

	calls := 0
	h := RateLimit(NewChatLimiter(1, 2), sender)(counting(&calls))
	for range 3 {
		h(context.Background(), nil, message(5, models.ChatTypePrivate))
	}
	assert.Equal(t, 2, calls)

	// Other chats have their own bucket.
	h(context.Background(), nil, message(6, models.ChatTypePrivate))
	assert.Equal(t, 3, calls)
}

func TestRateLimitDisabled(t *testing.T) {
	assert.Nil(t, NewChatLimiter(0, 5))

	calls := 0
	h := RateLimit(nil, nil)(counting(&calls))
	for range 50 {
		h(context.Background(), nil, message(5, models.ChatTypePrivate))
	}
	assert.Equal(t, 50, calls)
}

func TestRecoverSwallowsPanic(t *testing.T) {
	panicking := func(context.Context, *bot.Bot, *models.Update) { panic("boom") }

	assert.NotPanics(t, func() {
		Recover(nil)(panicking)(context.Background(), nil, message(5, models.ChatTypePrivate))
	})
}

func TestLoggingCallsNext(t *testing.T) {
	calls := 0
	Logging()(counting(&calls))(context.Background(), nil, message(5, models.ChatTypePrivate))
	assert.Equal(t, 1, calls)
}
