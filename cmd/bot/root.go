package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/set-night/rsvpbot/internal/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rsvpbot",
		Short:         "Party RSVP Telegram bot",
		Long:          "rsvpbot collects party signups over Telegram into an append-only JSONL log and exports the guest list as CSV.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context())
		},
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newExportCmd(),
		newGuestsCmd(),
	)

	return rootCmd
}

// loadConfig reads the configuration and installs the JSON logger at the
// configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return cfg, nil
}
