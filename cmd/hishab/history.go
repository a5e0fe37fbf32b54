package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/report"
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show income and expense totals per month, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			buckets := report.MonthlyHistory(store.Snapshot())
			if len(buckets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No dated transactions yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "MONTH", "INCOME", "EXPENSE", "NET")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 14),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))
			for _, b := range buckets {
				net := b.Income.Sub(b.Expense)
				netStr := cli.IncomeStyle.Render(cli.Amount(net))
				if net.IsNegative() {
					netStr = cli.ExpenseStyle.Render(cli.Amount(net))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					b.Month.Format("January 2006"),
					cli.Amount(b.Income),
					cli.Amount(b.Expense),
					netStr)
			}
			return w.Flush()
		},
	}
}
