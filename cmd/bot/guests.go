package main

import (
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/set-night/rsvpbot/internal/domain"
	"github.com/set-night/rsvpbot/internal/repository"
)

func newGuestsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "guests",
		Short: "Print the current guest list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			roster, err := repository.NewGuestLog(cfg.GuestLogPath()).Roster(cmd.Context())
			if err != nil {
				return err
			}
			records := roster.Active()
			if all {
				records = roster.Records()
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Chat", "User", "Username", "Lang", "Name", "Avec", "Avec handle", "Status", "Updated"})
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)
			for _, rec := range records {
				table.Append(guestRow(rec))
			}
			table.SetFooter([]string{"", "", "", "", strconv.Itoa(len(records)) + " shown", "", "", "", ""})
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include removed signups")
	return cmd
}

func guestRow(rec domain.GuestRecord) []string {
	return []string{
		strconv.FormatInt(rec.ChatID, 10),
		strconv.FormatInt(rec.UserID, 10),
		rec.Username,
		rec.Language,
		rec.FullName,
		rec.AvecFullName,
		rec.AvecUsername,
		string(rec.Status),
		rec.Timestamp.Local().Format(time.DateTime),
	}
}
