package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdshariful/hishab/internal/model"
)

// recordingPersister captures every snapshot handed to Save.
type recordingPersister struct {
	saved []*model.AppData
	err   error
}

func (p *recordingPersister) Save(_ context.Context, data *model.AppData) error {
	if p.err != nil {
		return p.err
	}
	p.saved = append(p.saved, data)
	return nil
}

func testTransaction(amount int64, tt model.TransactionType) model.Transaction {
	return model.Transaction{
		Type:     tt,
		Amount:   decimal.NewFromInt(amount),
		Category: "Misc",
		Date:     model.NewTimestamp(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)),
	}
}

func TestAddTransaction(t *testing.T) {
	persist := &recordingPersister{}
	store := NewStore(nil, persist)
	ctx := context.Background()

	added, err := store.AddTransaction(ctx, testTransaction(1000, model.Income))
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	snap := store.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, added.ID, snap.Transactions[0].ID)
	require.Len(t, persist.saved, 1)

	// Newest entry goes to the head.
	second, err := store.AddTransaction(ctx, testTransaction(300, model.Expense))
	require.NoError(t, err)
	snap = store.Snapshot()
	require.Len(t, snap.Transactions, 2)
	assert.Equal(t, second.ID, snap.Transactions[0].ID)
	assert.NotEqual(t, added.ID, second.ID)
}

func TestDeleteTransaction(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	first, err := store.AddTransaction(ctx, testTransaction(100, model.Income))
	require.NoError(t, err)
	second, err := store.AddTransaction(ctx, testTransaction(200, model.Expense))
	require.NoError(t, err)

	require.NoError(t, store.DeleteTransaction(ctx, first.ID))
	snap := store.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, second.ID, snap.Transactions[0].ID)

	// Deleting an absent ID is a silent no-op.
	require.NoError(t, store.DeleteTransaction(ctx, "no-such-id"))
	assert.Len(t, store.Snapshot().Transactions, 1)
}

func TestDeleteAbsentIDDoesNotPersist(t *testing.T) {
	persist := &recordingPersister{}
	store := NewStore(nil, persist)
	ctx := context.Background()

	require.NoError(t, store.DeleteTransaction(ctx, "missing"))
	require.NoError(t, store.DeleteSaving(ctx, "missing"))
	require.NoError(t, store.DeleteDebt(ctx, "missing"))
	assert.Empty(t, persist.saved)
}

func TestAddDebtRegistersParty(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	debt := model.Debt{
		Type:       model.Receivable,
		PersonName: "Alice",
		Amount:     decimal.NewFromInt(500),
		ActionType: model.Taken,
		Date:       model.NewTimestamp(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
	}
	_, err := store.AddDebt(ctx, debt)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, store.Snapshot().Parties)

	// A second record for the same person does not duplicate the party.
	_, err = store.AddDebt(ctx, debt)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, store.Snapshot().Parties)
}

func TestAddDebtEmptyPersonDoesNotRegisterParty(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	_, err := store.AddDebt(ctx, model.Debt{
		Type:       model.Payable,
		Amount:     decimal.NewFromInt(100),
		ActionType: model.Taken,
		Date:       model.NewTimestamp(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Empty(t, store.Snapshot().Parties)
}

func TestAddParty(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	require.NoError(t, store.AddParty(ctx, "Bob"))
	err := store.AddParty(ctx, "Bob")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateParty)
	assert.Equal(t, []string{"Bob"}, store.Snapshot().Parties)

	assert.ErrorIs(t, store.AddParty(ctx, "   "), ErrEmptyPartyName)
}

func TestFailedPersistLeavesSnapshotUntouched(t *testing.T) {
	persist := &recordingPersister{err: errors.New("disk full")}
	store := NewStore(nil, persist)
	ctx := context.Background()

	_, err := store.AddTransaction(ctx, testTransaction(100, model.Income))
	require.Error(t, err)
	assert.Empty(t, store.Snapshot().Transactions)
}

func TestSnapshotIsCopyOnWrite(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	before := store.Snapshot()
	_, err := store.AddTransaction(ctx, testTransaction(50, model.Expense))
	require.NoError(t, err)

	// The snapshot taken before the mutation still shows the old state.
	assert.Empty(t, before.Transactions)
	assert.Len(t, store.Snapshot().Transactions, 1)
}

func TestUpdateSingletons(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	profile := model.Profile{Name: "Shariful", Email: "s@example.com"}
	require.NoError(t, store.UpdateProfile(ctx, profile))
	assert.Equal(t, profile, store.Snapshot().Profile)

	settings := model.Settings{Language: model.LanguageEnglish, Theme: model.ThemeDark}
	require.NoError(t, store.UpdateSettings(ctx, settings))
	assert.Equal(t, settings, store.Snapshot().Settings)
}

func TestRestoreFull(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()
	_, err := store.AddTransaction(ctx, testTransaction(10, model.Income))
	require.NoError(t, err)

	imported := model.NewAppData()
	imported.Debts = []model.Debt{{
		ID:         "d1",
		Type:       model.Payable,
		PersonName: "Karim",
		Amount:     decimal.NewFromInt(75),
		ActionType: model.Taken,
	}}

	require.NoError(t, store.RestoreFull(ctx, imported))
	snap := store.Snapshot()
	assert.Empty(t, snap.Transactions)
	require.Len(t, snap.Debts, 1)
	// Restore re-establishes the party invariant even when the blob lacks it.
	assert.Contains(t, snap.Parties, "Karim")
}

func TestRestorePartialPrepends(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	existing, err := store.AddTransaction(ctx, testTransaction(10, model.Income))
	require.NoError(t, err)

	imported := []model.Transaction{
		{ID: "imp-1", Type: model.Expense, Amount: decimal.NewFromInt(5), Category: "Food"},
		{ID: "imp-2", Type: model.Income, Amount: decimal.NewFromInt(7), Category: "Gift"},
	}
	require.NoError(t, store.RestoreTransactions(ctx, imported))

	snap := store.Snapshot()
	require.Len(t, snap.Transactions, 3)
	assert.Equal(t, "imp-1", snap.Transactions[0].ID)
	assert.Equal(t, "imp-2", snap.Transactions[1].ID)
	assert.Equal(t, existing.ID, snap.Transactions[2].ID)

	// Empty imports are a no-op.
	require.NoError(t, store.RestoreTransactions(ctx, nil))
	assert.Len(t, store.Snapshot().Transactions, 3)
}

func TestRestoreDebtsRegistersParties(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	debts := []model.Debt{
		{ID: "d1", PersonName: "Alice", Type: model.Receivable, ActionType: model.Taken, Amount: decimal.NewFromInt(1)},
		{ID: "d2", PersonName: "Bob", Type: model.Payable, ActionType: model.Taken, Amount: decimal.NewFromInt(2)},
	}
	require.NoError(t, store.RestoreDebts(ctx, debts))

	snap := store.Snapshot()
	assert.Len(t, snap.Debts, 2)
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, snap.Parties)
}
