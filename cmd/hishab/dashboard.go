package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/tui"
)

func dashboardCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Browse the ledger interactively",
		Long:  `Open a full-screen dashboard showing the monthly figures and transactions. Use left/right to move between months.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ref, err := parseMonth(month)
			if err != nil {
				return err
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			return tui.Run(store.Snapshot(), ref)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "M", "", "Month to open on (YYYY-MM, defaults to current)")

	return cmd
}
