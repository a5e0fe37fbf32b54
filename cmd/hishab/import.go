package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/backup"
	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/common"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore from a backup file",
		Long: `Read a backup file and merge it into the ledger. A full backup replaces
the entire ledger; a selective backup prepends its records to the matching
collection. The file's contents determine which, no flag is needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup file: %w", err)
			}

			result, err := backup.Decode(blob)
			if errors.Is(err, backup.ErrEmptyBackup) {
				fmt.Println(cli.SubtleStyle.Render("Backup contains no records; nothing to import."))
				return nil
			}
			if err != nil {
				common.LogError(err, "backup decode failed", common.Fields{"path": args[0]})
				return common.NewUserError("This file is not a recognized backup. Export one with 'hishab export' first.", err)
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			var count int
			switch result.Kind {
			case backup.KindAll:
				full := result.Full
				count = len(full.Transactions) + len(full.Savings) + len(full.Debts)
				bar := progressbar.Default(1, "restoring ledger")
				if err := store.RestoreFull(ctx, full); err != nil {
					return fmt.Errorf("failed to restore backup: %w", err)
				}
				_ = bar.Finish()
			case backup.KindTransactions:
				count = len(result.Transactions)
				bar := progressbar.Default(int64(count), "importing transactions")
				if err := store.RestoreTransactions(ctx, result.Transactions); err != nil {
					return fmt.Errorf("failed to import transactions: %w", err)
				}
				_ = bar.Add(count)
			case backup.KindSavings:
				count = len(result.Savings)
				bar := progressbar.Default(int64(count), "importing savings")
				if err := store.RestoreSavings(ctx, result.Savings); err != nil {
					return fmt.Errorf("failed to import savings: %w", err)
				}
				_ = bar.Add(count)
			case backup.KindDebts:
				count = len(result.Debts)
				bar := progressbar.Default(int64(count), "importing debts")
				if err := store.RestoreDebts(ctx, result.Debts); err != nil {
					return fmt.Errorf("failed to import debts: %w", err)
				}
				_ = bar.Add(count)
			}

			common.LogInfo("backup imported", common.Fields{"kind": string(result.Kind), "records": count})
			fmt.Printf("%s Imported %s backup (%d record(s))\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				string(result.Kind),
				count)
			return nil
		},
	}
}
