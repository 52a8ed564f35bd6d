package main

import (
	"fmt"

	"github.com/2beens/gymload/internal/auth"
	"github.com/2beens/gymload/internal/logbook"
	"github.com/2beens/gymload/internal/telemetry/metrics"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var flagPRsUsername string

var prsCmd = &cobra.Command{
	Use:   "prs",
	Short: "Personal records maintenance",
}

var prsRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Recompute a user's personal records from their set history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, pool, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		user, err := auth.NewRepo(pool).GetByUsername(ctx, flagPRsUsername)
		if err != nil {
			return fmt.Errorf("get user %s: %w", flagPRsUsername, err)
		}

		service := logbook.NewService(
			logbook.NewPsqlStore(pool),
			metrics.NewManager("tools", "gymload", prometheus.NewRegistry()),
			cfg.PRConflictRetries,
		)
		prs, err := service.RebuildPersonalRecords(ctx, user.ID)
		if err != nil {
			return err
		}

		exerciseColor := color.New(color.FgCyan, color.Bold).SprintFunc()
		for _, pr := range prs {
			fmt.Printf("  %s x%d: %.2f (%s)\n",
				exerciseColor(pr.Exercise), pr.Reps, pr.Weight, pr.Date.Format("2006-01-02"),
			)
		}
		color.Green("rebuilt %d personal records for %s", len(prs), user.Username)
		return nil
	},
}

func init() {
	prsRebuildCmd.Flags().StringVarP(&flagPRsUsername, "username", "u", "", "user whose records are rebuilt")
	_ = prsRebuildCmd.MarkFlagRequired("username")

	prsCmd.AddCommand(prsRebuildCmd)
}
