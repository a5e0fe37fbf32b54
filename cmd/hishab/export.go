package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdshariful/hishab/internal/backup"
	"github.com/mdshariful/hishab/internal/cli"
	"github.com/mdshariful/hishab/internal/common"
)

func exportCmd() *cobra.Command {
	var (
		kindFlag string
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup file",
		Long: `Write the ledger to a JSON backup file. A full backup carries every
collection plus the profile and settings; a selective backup of one
collection is a bare JSON array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind := backup.Kind(kindFlag)
			switch kind {
			case backup.KindAll, backup.KindTransactions, backup.KindSavings, backup.KindDebts:
			default:
				return fmt.Errorf("invalid kind %q, want all, transactions, savings, or debts", kindFlag)
			}

			store, db, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			blob, err := backup.EncodeKind(store.Snapshot(), kind)
			if err != nil {
				return fmt.Errorf("failed to encode backup: %w", err)
			}

			path := filepath.Join(outDir, backup.FileName(kind, time.Now()))
			if err := os.WriteFile(path, blob, 0600); err != nil {
				return fmt.Errorf("failed to write backup file: %w", err)
			}

			common.LogInfo("backup written", common.Fields{"kind": string(kind), "path": path, "bytes": len(blob)})
			fmt.Printf("%s Exported %s backup to %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				string(kind),
				cli.BoldStyle.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "all", "What to export: all, transactions, savings, or debts")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the backup file into")

	return cmd
}
