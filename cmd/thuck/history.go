package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbartlett/thuck/internal/db"
	"github.com/mbartlett/thuck/internal/paths"
	"github.com/mbartlett/thuck/internal/repository"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently observed feeds",
		Long:  "Prints feed events cached locally while the dashboard was running.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := paths.DB()
			if err != nil {
				return err
			}

			sqlDB, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() { _ = sqlDB.Close() }()

			history := repository.NewFeedHistory(sqlDB)

			events, err := history.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("no feeds recorded yet")
				return nil
			}

			for _, e := range events {
				fmt.Printf("%s  %d%s\n", e.Time.Format("2006-01-02 15:04"), e.Amount, e.Unit)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of feeds to show")
	return cmd
}
