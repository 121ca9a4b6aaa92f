package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/set-night/rsvpbot/internal/repository"
	"github.com/set-night/rsvpbot/internal/service"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [out.csv] [guest-log.jsonl]",
		Short: "Write the active guest list as CSV",
		Long:  "Replays the guest log and writes the latest active record of every guest as CSV. Without an output path the file is written to the data directory under a unique name.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logPath := cfg.GuestLogPath()
			if len(args) == 2 {
				logPath = args[1]
			}
			exporter := service.NewExporter(repository.NewGuestLog(logPath), cfg.DataDir)

			if len(args) == 0 {
				path, err := exporter.ExportFile(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			n, err := exporter.WriteFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d guests to %s\n", n, args[0])
			return nil
		},
	}
}
