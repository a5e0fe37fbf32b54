package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/report"
)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly figures and overall balances",
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

			snap := store.Snapshot()
			sums := report.MonthlySums(report.MonthlyTransactions(snap, ref))
			receivables, payables := report.TotalsByDirection(report.PartyBalances(snap))

			var figures strings.Builder
			fmt.Fprintf(&figures, "Income     %s\n", cli.IncomeStyle.Render(cli.Amount(sums.Income)))
			fmt.Fprintf(&figures, "Expense    %s\n", cli.ExpenseStyle.Render(cli.Amount(sums.Expense)))
			fmt.Fprintf(&figures, "\n")
			fmt.Fprintf(&figures, "Hand Cash  %s\n", cli.BoldStyle.Render(cli.Amount(report.CashBalance(snap))))
			fmt.Fprintf(&figures, "Savings    %s\n", cli.SavingsStyle.Render(cli.Amount(report.SavingsBalance(snap))))
			fmt.Fprintf(&figures, "I'll Get   %s\n", cli.IncomeStyle.Render(cli.Amount(receivables)))
			fmt.Fprintf(&figures, "I'll Give  %s", cli.ExpenseStyle.Render(cli.Amount(payables)))

			fmt.Println(cli.TitleStyle.Render(cli.MoneyIcon + " " + ref.Format("January 2006")))
			fmt.Println(cli.BoxStyle.Render(figures.String()))

			if integrity := report.Integrity(snap); !integrity.Clean() {
				fmt.Println()
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf(
					"%s %d record(s) have unreadable dates and are excluded from monthly figures.",
					cli.WarningIcon, integrity.Total())))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "M", "", "Month to summarize (YYYY-MM, defaults to current)")

	return cmd
}
