package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdshariful/hishab/internal/config"
	"github.com/mdshariful/hishab/internal/ledger"
	"github.com/mdshariful/hishab/internal/model"
	"github.com/mdshariful/hishab/internal/storage"
)

// openLedger opens the on-device database, migrates it, and loads the
// current snapshot into a store. The caller must Close the returned
// SQLiteStore.
func openLedger(ctx context.Context) (*ledger.Store, *storage.SQLiteStore, error) {
	db, err := storage.NewSQLiteStore(config.DataPath())
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	data, err := db.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return ledger.NewStore(data, db), db, nil
}

// parseMonth parses a "2006-01" month flag; empty means the current month.
func parseMonth(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	month, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return month, nil
}

// parseDate parses a record date flag; empty means now. Accepts the same
// layouts the backup decoder does.
func parseDate(s string) (model.Timestamp, error) {
	if s == "" {
		return model.NewTimestamp(time.Now()), nil
	}
	ts, ok := model.ParseTimestamp(s)
	if !ok {
		return model.Timestamp{}, fmt.Errorf("invalid date %q", s)
	}
	return ts, nil
}

// List views order records by date, newest first. The stable sort keeps
// insertion order for equal dates, so a back-dated entry sits where its
// date puts it rather than where it was entered.

func sortTransactionsNewestFirst(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date.Time)
	})
}

func sortSavingsNewestFirst(savings []model.Saving) {
	sort.SliceStable(savings, func(i, j int) bool {
		return savings[i].Date.After(savings[j].Date.Time)
	})
}

func sortDebtsNewestFirst(debts []model.Debt) {
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Date.After(debts[j].Date.Time)
	})
}

// parseAmount parses a non-negative decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be negative: %s", s)
	}
	return amount, nil
}
