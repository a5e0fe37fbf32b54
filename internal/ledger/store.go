// Package ledger holds the canonical application snapshot and applies
// mutations to it. The store follows a copy-on-write discipline: every
// mutation builds a new snapshot, persists it, and only then publishes it,
// so code rendering from the previous snapshot never observes a partial
// update. The store is designed for a single event loop and does no locking.
package ledger

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mdshariful/hishab/internal/model"
)

// Persister writes the full snapshot to durable storage. Save is called with
// the candidate snapshot before it is published; returning an error leaves
// the store on its previous snapshot.
type Persister interface {
	Save(ctx context.Context, data *model.AppData) error
}

// Store owns the AppData snapshot and is the only component that mutates it.
type Store struct {
	persist Persister
	data    *model.AppData
}

// NewStore creates a store around an existing snapshot. A nil snapshot
// starts a fresh ledger; a nil persister keeps the store memory-only,
// which tests rely on.
func NewStore(data *model.AppData, persist Persister) *Store {
	if data == nil {
		data = model.NewAppData()
	}
	data.Normalize()
	return &Store{data: data, persist: persist}
}

// Snapshot returns the current snapshot. Callers must treat it as immutable.
func (s *Store) Snapshot() *model.AppData {
	return s.data
}

func (s *Store) commit(ctx context.Context, next *model.AppData) error {
	if s.persist != nil {
		if err := s.persist.Save(ctx, next); err != nil {
			return fmt.Errorf("failed to persist snapshot: %w", err)
		}
	}
	s.data = next
	return nil
}

// AddTransaction assigns a fresh ID and prepends the transaction. The stored
// record is returned so callers can report its ID.
func (s *Store) AddTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	txn.ID = uuid.NewString()
	next := s.data.Clone()
	next.Transactions = append([]model.Transaction{txn}, next.Transactions...)
	if err := s.commit(ctx, next); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

// AddSaving assigns a fresh ID and prepends the savings movement.
func (s *Store) AddSaving(ctx context.Context, saving model.Saving) (model.Saving, error) {
	saving.ID = uuid.NewString()
	next := s.data.Clone()
	next.Savings = append([]model.Saving{saving}, next.Savings...)
	if err := s.commit(ctx, next); err != nil {
		return model.Saving{}, err
	}
	return saving, nil
}

// AddDebt assigns a fresh ID and prepends the debt record. An unknown person
// name is registered as a party in the same mutation.
func (s *Store) AddDebt(ctx context.Context, debt model.Debt) (model.Debt, error) {
	debt.ID = uuid.NewString()
	next := s.data.Clone()
	next.Debts = append([]model.Debt{debt}, next.Debts...)
	if debt.PersonName != "" && !slices.Contains(next.Parties, debt.PersonName) {
		next.Parties = append(next.Parties, debt.PersonName)
	}
	if err := s.commit(ctx, next); err != nil {
		return model.Debt{}, err
	}
	return debt, nil
}

// DeleteTransaction removes the transaction with the given ID. Deleting an
// absent ID is a no-op, not an error.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	next := s.data.Clone()
	kept, removed := dropByID(next.Transactions, id, func(t model.Transaction) string { return t.ID })
	if !removed {
		return nil
	}
	next.Transactions = kept
	return s.commit(ctx, next)
}

// DeleteSaving removes the savings movement with the given ID. Idempotent.
func (s *Store) DeleteSaving(ctx context.Context, id string) error {
	next := s.data.Clone()
	kept, removed := dropByID(next.Savings, id, func(sv model.Saving) string { return sv.ID })
	if !removed {
		return nil
	}
	next.Savings = kept
	return s.commit(ctx, next)
}

// DeleteDebt removes the debt record with the given ID. Idempotent. The
// person stays in the party list even when their last record is deleted.
func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	next := s.data.Clone()
	kept, removed := dropByID(next.Debts, id, func(d model.Debt) string { return d.ID })
	if !removed {
		return nil
	}
	next.Debts = kept
	return s.commit(ctx, next)
}

// AddParty registers a person explicitly. The party list is append-only and
// names are unique.
func (s *Store) AddParty(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPartyName
	}
	if slices.Contains(s.data.Parties, name) {
		return fmt.Errorf("%w: %s", ErrDuplicateParty, name)
	}
	next := s.data.Clone()
	next.Parties = append(next.Parties, name)
	return s.commit(ctx, next)
}

// UpdateProfile replaces the profile wholesale.
func (s *Store) UpdateProfile(ctx context.Context, profile model.Profile) error {
	next := s.data.Clone()
	next.Profile = profile
	return s.commit(ctx, next)
}

// UpdateSettings replaces the settings wholesale.
func (s *Store) UpdateSettings(ctx context.Context, settings model.Settings) error {
	next := s.data.Clone()
	next.Settings = settings
	return s.commit(ctx, next)
}

// RestoreFull replaces the entire snapshot with an imported backup.
func (s *Store) RestoreFull(ctx context.Context, data *model.AppData) error {
	if data == nil {
		return fmt.Errorf("cannot restore a nil snapshot")
	}
	next := data.Clone()
	next.Normalize()
	return s.commit(ctx, next)
}

// RestoreTransactions prepends imported transactions to the collection.
func (s *Store) RestoreTransactions(ctx context.Context, txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	next := s.data.Clone()
	next.Transactions = append(slices.Clone(txns), next.Transactions...)
	return s.commit(ctx, next)
}

// RestoreSavings prepends imported savings movements to the collection.
func (s *Store) RestoreSavings(ctx context.Context, savings []model.Saving) error {
	if len(savings) == 0 {
		return nil
	}
	next := s.data.Clone()
	next.Savings = append(slices.Clone(savings), next.Savings...)
	return s.commit(ctx, next)
}

// RestoreDebts prepends imported debt records and registers any new person
// names as parties.
func (s *Store) RestoreDebts(ctx context.Context, debts []model.Debt) error {
	if len(debts) == 0 {
		return nil
	}
	next := s.data.Clone()
	next.Debts = append(slices.Clone(debts), next.Debts...)
	for _, d := range debts {
		if d.PersonName != "" && !slices.Contains(next.Parties, d.PersonName) {
			next.Parties = append(next.Parties, d.PersonName)
		}
	}
	return s.commit(ctx, next)
}

// dropByID removes the single record with the given ID, reporting whether
// anything was removed.
func dropByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
