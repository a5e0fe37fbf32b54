package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/model"
	"github.com/mdshariful/hishab/internal/report"
)

func savingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Manage the savings pot",
		Long:  `Record deposits into and withdrawals from savings, and show the pot balance.`,
	}

	cmd.AddCommand(addSavingCmd())
	cmd.AddCommand(deleteSavingCmd())
	cmd.AddCommand(listSavingsCmd())

	return cmd
}

func addSavingCmd() *cobra.Command {
	var (
		moveType    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a savings movement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			kind := model.SavingType(strings.ToUpper(moveType))
			if !kind.Valid() {
				return fmt.Errorf("invalid type %q, want add or subtract", moveType)
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

			saving, err := store.AddSaving(ctx, model.Saving{
				Amount:      amount,
				Type:        kind,
				Description: description,
				Date:        when,
			})
			if err != nil {
				return fmt.Errorf("failed to add saving: %w", err)
			}

			fmt.Printf("%s %s Savings %s %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				cli.BankIcon,
				cli.SavingAmount(saving.Type, saving.Amount),
				cli.SubtleStyle.Render("("+saving.ID+")"))
			fmt.Printf("Balance: %s\n", cli.SavingsStyle.Render(cli.Amount(report.SavingsBalance(store.Snapshot()))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&moveType, "type", "t", "add", "Movement type: add or subtract")
	cmd.Flags().StringVarP(&description, "description", "m", "", "Free-form note")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Record date (YYYY-MM-DD, defaults to now)")

	return cmd
}

func deleteSavingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings movement by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.DeleteSaving(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete saving: %w", err)
			}

			fmt.Printf("%s Deleted %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), args[0])
			return nil
		},
	}
}

func listSavingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all savings movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			snap := store.Snapshot()
			if len(snap.Savings) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No savings recorded yet."))
				return nil
			}
			savings := slices.Clone(snap.Savings)
			sortSavingsNewestFirst(savings)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "DATE", "AMOUNT", "DESCRIPTION", "ID")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 24),
				strings.Repeat("-", 36))
			for _, s := range savings {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					s.Date.Format("2006-01-02"),
					cli.SavingAmount(s.Type, s.Amount),
					s.Description,
					cli.SubtleStyle.Render(s.ID))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\n%s Balance: %s\n",
				cli.BankIcon,
				cli.SavingsStyle.Render(cli.Amount(report.SavingsBalance(snap))))
			return nil
		},
	}
}
