package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/model"
	"github.com/mdshariful/hishab/internal/report"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage income and expense transactions",
		Long:  `Add, delete, and list the cash transactions that make up the ledger.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(listTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType      string
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Long:  `Record an income or expense entry. The amount is a plain decimal, e.g. 1500.25.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			kind := model.TransactionType(strings.ToUpper(txType))
			if !kind.Valid() {
				return fmt.Errorf("invalid type %q, want income or expense", txType)
			}

			when, err := parseDate(date)
			if err != nil {
				return err
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			txn, err := store.AddTransaction(ctx, model.Transaction{
				Type:        kind,
				Amount:      amount,
				Category:    category,
				Description: description,
				Date:        when,
			})
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Printf("%s Recorded %s %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				cli.SignedAmount(txn.Type, txn.Amount),
				cli.SubtleStyle.Render("("+txn.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Transaction type: income or expense")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label (e.g. Salary, Groceries)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "Free-form note")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Record date (YYYY-MM-DD, defaults to now)")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Printf("%s Deleted %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), args[0])
			return nil
		},
	}
}

func listTxCmd() *cobra.Command {
	var (
		month  string
		txType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ref, err := parseMonth(month)
			if err != nil {
				return err
			}

			var filter model.TransactionType
			if txType != "" {
				filter = model.TransactionType(strings.ToUpper(txType))
				if !filter.Valid() {
					return fmt.Errorf("invalid type %q, want income or expense", txType)
				}
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			txns := report.MonthlyTransactions(store.Snapshot(), ref)
			if filter != "" {
				kept := make([]model.Transaction, 0, len(txns))
				for _, t := range txns {
					if t.Type == filter {
						kept = append(kept, t)
					}
				}
				txns = kept
			}
			sortTransactionsNewestFirst(txns)
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions in " + ref.Format("January 2006") + "."))
				return nil
			}

			sums := report.MonthlySums(txns)
			fmt.Println(cli.TitleStyle.Render(ref.Format("January 2006")))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "DATE", "CATEGORY", "AMOUNT", "DESCRIPTION", "ID")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 14),
				strings.Repeat("-", 10),
				strings.Repeat("-", 24),
				strings.Repeat("-", 36))
			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.Date.Format("2006-01-02"),
					t.Category,
					cli.SignedAmount(t.Type, t.Amount),
					t.Description,
					cli.SubtleStyle.Render(t.ID))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nIncome %s  Expense %s\n",
				cli.IncomeStyle.Render(cli.Amount(sums.Income)),
				cli.ExpenseStyle.Render(cli.Amount(sums.Expense)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "M", "", "Month to list (YYYY-MM, defaults to current)")
	cmd.Flags().StringVarP(&txType, "type", "t", "", "Only show income or expense entries")

	return cmd
}
