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

func partyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Manage debt parties",
		Long:  `List the people you track debts with, and register new ones before recording events against them.`,
	}

	cmd.AddCommand(addPartyCmd())
	cmd.AddCommand(listPartiesCmd())

	return cmd
}

func addPartyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.AddParty(ctx, args[0]); err != nil {
				return err
			}

			fmt.Printf("%s Added %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), cli.BoldStyle.Render(strings.TrimSpace(args[0])))
			return nil
		},
	}
}

func listPartiesCmd() *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List parties with their outstanding balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var filter model.DebtDirection
			if direction != "" {
				filter = model.DebtDirection(strings.ToUpper(direction))
				if !filter.Valid() {
					return fmt.Errorf("invalid direction %q, want receivable or payable", direction)
				}
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			snap := store.Snapshot()
			if len(snap.Parties) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No parties yet. Use 'hishab party add' or record a debt."))
				return nil
			}

			balances := report.PartyBalances(snap)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\n", "PERSON", "BALANCE", "STATUS")
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 14),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))
			for _, name := range snap.Parties {
				bal, ok := balances[name]
				if !ok {
					if filter == "" {
						fmt.Fprintf(w, "%s\t%s\t%s\n", name, cli.Amount(bal.Total), cli.SubtleStyle.Render("no records"))
					}
					continue
				}
				if filter != "" && bal.Direction != filter {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, cli.Amount(bal.Total), cli.DirectionLabel(bal.Direction))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "t", "", "Only show receivable or payable parties")

	return cmd
}
