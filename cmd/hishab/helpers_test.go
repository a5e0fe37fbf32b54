package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshariful/hishab/internal/model"
)

func TestParseMonth(t *testing.T) {
	month, err := parseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, month.Year())
	assert.Equal(t, time.March, month.Month())
	assert.Equal(t, 1, month.Day())

	_, err = parseMonth("March 2024")
	assert.Error(t, err)

	// Empty means the current month, truncated to its first day.
	now, err := parseMonth("")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Month(), now.Month())
	assert.Equal(t, 1, now.Day())
}

func TestParseDate(t *testing.T) {
	ts, err := parseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 15, ts.Day())

	ts, err = parseDate("2024-01-15T09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())

	_, err = parseDate("someday")
	assert.Error(t, err)

	// Empty defaults to now.
	ts, err = parseDate("")
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("1500.25")
	require.NoError(t, err)
	assert.Equal(t, "1500.25", amount.String())

	amount, err = parseAmount(" 42.50 ")
	require.NoError(t, err)
	assert.Equal(t, "42.5", amount.String())

	_, err = parseAmount("-5")
	assert.Error(t, err)

	_, err = parseAmount("ten")
	assert.Error(t, err)
}

func displayDate(year int, month time.Month, day int) model.Timestamp {
	return model.NewTimestamp(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

func TestSortTransactionsNewestFirst(t *testing.T) {
	// A back-dated entry is inserted at the head of the collection, but
	// display order follows the record date.
	txns := []model.Transaction{
		{ID: "backdated", Date: displayDate(2024, time.January, 5)},
		{ID: "newer", Date: displayDate(2024, time.January, 20)},
	}

	sortTransactionsNewestFirst(txns)

	assert.Equal(t, "newer", txns[0].ID)
	assert.Equal(t, "backdated", txns[1].ID)
}

func TestSortNewestFirstKeepsInsertionOrderOnTies(t *testing.T) {
	txns := []model.Transaction{
		{ID: "first", Date: displayDate(2024, time.January, 5)},
		{ID: "second", Date: displayDate(2024, time.January, 5)},
	}

	sortTransactionsNewestFirst(txns)

	assert.Equal(t, "first", txns[0].ID)
	assert.Equal(t, "second", txns[1].ID)
}

func TestSortDebtsNewestFirst(t *testing.T) {
	debts := []model.Debt{
		{ID: "old", PersonName: "Alice", Date: displayDate(2024, time.February, 1)},
		{ID: "recent", PersonName: "Alice", Date: displayDate(2024, time.March, 1)},
	}

	sortDebtsNewestFirst(debts)

	assert.Equal(t, "recent", debts[0].ID)
}

func TestSortSavingsNewestFirst(t *testing.T) {
	savings := []model.Saving{
		{ID: "old", Date: displayDate(2024, time.February, 1)},
		{ID: "recent", Date: displayDate(2024, time.March, 1)},
	}

	sortSavingsNewestFirst(savings)

	assert.Equal(t, "recent", savings[0].ID)
}

func TestTxCmd(t *testing.T) {
	cmd := txCmd()
	assert.NotNil(t, cmd)

	names := make(map[string]bool)
	for _, subcmd := range cmd.Commands() {
		names[subcmd.Name()] = true
	}
	assert.True(t, names["add"], "add subcommand should exist")
	assert.True(t, names["delete"], "delete subcommand should exist")
	assert.True(t, names["list"], "list subcommand should exist")
}

func TestAddTxCmdDefaults(t *testing.T) {
	cmd := addTxCmd()

	flag := cmd.Flag("type")
	assert.NotNil(t, flag)
	assert.Equal(t, "expense", flag.DefValue)

	flag = cmd.Flag("date")
	assert.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestAddDebtCmdDefaults(t *testing.T) {
	cmd := addDebtCmd()

	flag := cmd.Flag("direction")
	assert.NotNil(t, flag)
	assert.Equal(t, "receivable", flag.DefValue)

	flag = cmd.Flag("action")
	assert.NotNil(t, flag)
	assert.Equal(t, "taken", flag.DefValue)
}

func TestExportCmdDefaults(t *testing.T) {
	cmd := exportCmd()

	flag := cmd.Flag("kind")
	assert.NotNil(t, flag)
	assert.Equal(t, "all", flag.DefValue)

	flag = cmd.Flag("out")
	assert.NotNil(t, flag)
	assert.Equal(t, ".", flag.DefValue)
}

func TestCommandTree(t *testing.T) {
	tree := []*cobra.Command{
		savingsCmd(), debtCmd(), partyCmd(), summaryCmd(), historyCmd(),
		dashboardCmd(), exportCmd(), importCmd(), profileCmd(), settingsCmd(),
	}
	for _, cmd := range tree {
		assert.NotEmpty(t, cmd.Use)
		assert.NotEmpty(t, cmd.Short)
	}
}
