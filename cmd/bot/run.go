package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/cobra"

	"github.com/set-night/rsvpbot/internal/config"
	"github.com/set-night/rsvpbot/internal/handler"
	"github.com/set-night/rsvpbot/internal/middleware"
	"github.com/set-night/rsvpbot/internal/repository"
	"github.com/set-night/rsvpbot/internal/service"
	"github.com/set-night/rsvpbot/internal/telegram"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the bot (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context())
		},
	}
}

func runBot(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One process per data directory
	dirLock, err := repository.LockDir(cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := dirLock.Release(); err != nil {
			slog.Error("release data dir lock", "error", err)
		}
	}()

	guests := repository.NewGuestLog(cfg.GuestLogPath())
	admins := repository.NewAdminStore(cfg.GroupAdminsPath())
	auth := service.NewAuthorizer(cfg.SuperAdminID(), cfg.SuperAdminHandle(), cfg.GroupID, admins)

	// Handler chain for use in default handler closure
	var handle bot.HandlerFunc

	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if handle == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, config.UpdateTimeout)
		defer cancel()
		handle(ctx, b, update)
	}))
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("get bot info: %w", err)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	sender := telegram.NewBotSender(b)
	tgLogger := telegram.NewTelegramLogger(sender, cfg.LogTelegramChatID)

	h := handler.New(handler.Deps{
		Sender:      sender,
		Guests:      guests,
		Admins:      admins,
		Auth:        auth,
		Exporter:    service.NewExporter(guests, cfg.DataDir),
		Broadcaster: service.NewBroadcaster(guests, sender, cfg.BroadcastDelay),
		PartyInfo:   service.NewPartyInfo(cfg.PartyInfoTextPath, cfg.PartyInfoImagePath),
		TgLogger:    tgLogger,
		BaseContext: ctx,
	})

	handle = chain(h.HandleUpdate,
		middleware.Recover(tgLogger),
		middleware.Logging(),
		middleware.GroupFilter(auth),
		middleware.RateLimit(middleware.NewChatLimiter(cfg.RateLimitPerMinute, config.RateLimitBurst), sender),
	)

	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Error("drop pending updates", "error", err)
		}
	}
	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: handler.Commands}); err != nil {
		slog.Error("set bot commands", "error", err)
	}

	slog.Info("starting bot",
		"username", me.Username,
		"group_id", cfg.GroupID,
		"guest_log", cfg.GuestLogPath(),
		"party_info", cfg.PartyInfoTextPath != "" || cfg.PartyInfoImagePath != "",
	)
	b.Start(ctx)

	h.Wait()
	slog.Info("bot stopped gracefully")
	return nil
}

// chain wraps next in mws, the first middleware being the outermost.
func chain(next bot.HandlerFunc, mws ...bot.Middleware) bot.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](next)
	}
	return next
}
