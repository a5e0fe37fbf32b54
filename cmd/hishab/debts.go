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
)

func debtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Manage debts and loans",
		Long: `Record debt events against named people. A RECEIVABLE event means the
person owes you; a PAYABLE event means you owe them. The person's current
classification follows their most recent event.`,
	}

	cmd.AddCommand(addDebtCmd())
	cmd.AddCommand(deleteDebtCmd())
	cmd.AddCommand(listDebtsCmd())

	return cmd
}

func addDebtCmd() *cobra.Command {
	var (
		direction   string
		action      string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add <person> <amount>",
		Short: "Record a debt event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			person := strings.TrimSpace(args[0])
			if person == "" {
				return fmt.Errorf("person name cannot be empty")
			}

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			dir := model.DebtDirection(strings.ToUpper(direction))
			if !dir.Valid() {
				return fmt.Errorf("invalid direction %q, want receivable or payable", direction)
			}

			act := model.DebtAction(strings.ToUpper(action))
			if !act.Valid() {
				return fmt.Errorf("invalid action %q, want taken or repaid", action)
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

			debt, err := store.AddDebt(ctx, model.Debt{
				Type:        dir,
				PersonName:  person,
				Amount:      amount,
				Description: description,
				Date:        when,
				ActionType:  act,
			})
			if err != nil {
				return fmt.Errorf("failed to add debt: %w", err)
			}

			fmt.Printf("%s %s: %s %s %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				cli.BoldStyle.Render(debt.PersonName),
				cli.Amount(debt.Amount),
				cli.DirectionLabel(debt.Type),
				cli.SubtleStyle.Render("("+debt.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "t", "receivable", "Direction: receivable or payable")
	cmd.Flags().StringVarP(&action, "action", "a", "taken", "Action: taken or repaid")
	cmd.Flags().StringVarP(&description, "description", "m", "", "Free-form note")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Record date (YYYY-MM-DD, defaults to now)")

	return cmd
}

func deleteDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt event by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.DeleteDebt(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete debt: %w", err)
			}

			fmt.Printf("%s Deleted %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), args[0])
			return nil
		},
	}
}

func listDebtsCmd() *cobra.Command {
	var person string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List debt events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			snap := store.Snapshot()
			debts := slices.Clone(snap.Debts)
			if person != "" {
				filtered := make([]model.Debt, 0, len(debts))
				for _, d := range debts {
					if strings.EqualFold(d.PersonName, person) {
						filtered = append(filtered, d)
					}
				}
				debts = filtered
			}
			sortDebtsNewestFirst(debts)

			if len(debts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No debt records found."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", "DATE", "PERSON", "AMOUNT", "DIRECTION", "ACTION", "ID")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 14),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10),
				strings.Repeat("-", 6),
				strings.Repeat("-", 36))
			for _, d := range debts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.Date.Format("2006-01-02"),
					d.PersonName,
					cli.Amount(d.Amount),
					cli.DirectionLabel(d.Type),
					string(d.ActionType),
					cli.SubtleStyle.Render(d.ID))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "Only show events for this person")

	return cmd
}
