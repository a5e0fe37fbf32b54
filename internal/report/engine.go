// Package report derives every displayed figure from a ledger snapshot.
// All functions are pure: they read the snapshot, never mutate it, and are
// safe to recompute on every change. Records whose date failed to parse are
// excluded from month-bucketed views but still count toward balances; use
// Integrity to surface them.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdshariful/hishab/internal/model"
)

// Sums holds the income and expense totals for a set of transactions.
type Sums struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// PartyBalance is one person's outstanding total and its direction.
type PartyBalance struct {
	Total     decimal.Decimal
	Direction model.DebtDirection
}

// MonthBucket aggregates one calendar month of transactions.
type MonthBucket struct {
	Month   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlyTransactions filters transactions to the calendar month of ref,
// preserving collection order. Zero-dated records never match.
func MonthlyTransactions(snap *model.AppData, ref time.Time) []model.Transaction {
	var out []model.Transaction
	for _, txn := range snap.Transactions {
		if txn.Date.SameMonth(ref) {
			out = append(out, txn)
		}
	}
	return out
}

// MonthlySums totals the income and expense amounts of the given
// transactions, typically a MonthlyTransactions result.
func MonthlySums(txns []model.Transaction) Sums {
	sums := Sums{Income: decimal.Zero, Expense: decimal.Zero}
	for _, txn := range txns {
		switch txn.Type {
		case model.Income:
			sums.Income = sums.Income.Add(txn.Amount)
		case model.Expense:
			sums.Expense = sums.Expense.Add(txn.Amount)
		}
	}
	return sums
}

// CashBalance folds over every transaction in the log, not just the
// displayed month: income adds, expense subtracts. The fold is
// order-independent.
func CashBalance(snap *model.AppData) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range snap.Transactions {
		if txn.Type == model.Income {
			total = total.Add(txn.Amount)
		} else {
			total = total.Sub(txn.Amount)
		}
	}
	return total
}

// SavingsBalance folds over every savings movement: ADD deposits,
// SUBTRACT withdraws.
func SavingsBalance(snap *model.AppData) decimal.Decimal {
	total := decimal.Zero
	for _, sv := range snap.Savings {
		if sv.Type == model.SavingAdd {
			total = total.Add(sv.Amount)
		} else {
			total = total.Sub(sv.Amount)
		}
	}
	return total
}

// PartyBalances groups debt records by person. TAKEN raises the outstanding
// total, REPAID lowers it. A person's direction is decided by their record
// with the latest date; among equal dates the later record in collection
// order wins, so the result is deterministic even for mixed-direction
// histories.
func PartyBalances(snap *model.AppData) map[string]PartyBalance {
	type state struct {
		total     decimal.Decimal
		direction model.DebtDirection
		latest    time.Time
	}
	states := make(map[string]*state)

	for _, d := range snap.Debts {
		st, ok := states[d.PersonName]
		if !ok {
			st = &state{total: decimal.Zero, direction: d.Type, latest: d.Date.Time}
			states[d.PersonName] = st
		} else if !d.Date.Before(st.latest) {
			st.direction = d.Type
			st.latest = d.Date.Time
		}
		if d.ActionType == model.Taken {
			st.total = st.total.Add(d.Amount)
		} else {
			st.total = st.total.Sub(d.Amount)
		}
	}

	out := make(map[string]PartyBalance, len(states))
	for name, st := range states {
		out[name] = PartyBalance{Total: st.total, Direction: st.direction}
	}
	return out
}

// TotalsByDirection sums party totals into receivable and payable figures.
// Totals are not clamped: a receivable party whose running total went
// negative still contributes its negative total.
func TotalsByDirection(balances map[string]PartyBalance) (receivables, payables decimal.Decimal) {
	receivables, payables = decimal.Zero, decimal.Zero
	for _, b := range balances {
		if b.Direction == model.Receivable {
			receivables = receivables.Add(b.Total)
		} else {
			payables = payables.Add(b.Total)
		}
	}
	return receivables, payables
}

// MonthlyHistory buckets every dated transaction by calendar month and
// returns the buckets newest-first. Months without activity do not appear.
// Membership is evaluated in the local time zone so a record lands in the
// same month here as in the monthly views.
func MonthlyHistory(snap *model.AppData) []MonthBucket {
	buckets := make(map[string]*MonthBucket)

	for _, txn := range snap.Transactions {
		if txn.Date.IsZero() {
			continue
		}
		d := txn.Date.In(time.Local)
		key := d.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{
				Month:   time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[key] = b
		}
		if txn.Type == model.Income {
			b.Income = b.Income.Add(txn.Amount)
		} else {
			b.Expense = b.Expense.Add(txn.Amount)
		}
	}

	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.After(out[j].Month)
	})
	return out
}

// IntegrityReport counts records whose date could not be parsed. Such
// records are invisible to month-bucketed views and party classification by
// date, so commands surface them as a warning.
type IntegrityReport struct {
	UndatedTransactions int
	UndatedSavings      int
	UndatedDebts        int
}

// Clean reports whether every record carries a usable date.
func (r IntegrityReport) Clean() bool {
	return r.UndatedTransactions == 0 && r.UndatedSavings == 0 && r.UndatedDebts == 0
}

// Total returns the number of undated records across all collections.
func (r IntegrityReport) Total() int {
	return r.UndatedTransactions + r.UndatedSavings + r.UndatedDebts
}

// Integrity scans the snapshot for records with unusable dates.
func Integrity(snap *model.AppData) IntegrityReport {
	var r IntegrityReport
	for _, txn := range snap.Transactions {
		if txn.Date.IsZero() {
			r.UndatedTransactions++
		}
	}
	for _, sv := range snap.Savings {
		if sv.Date.IsZero() {
			r.UndatedSavings++
		}
	}
	for _, d := range snap.Debts {
		if d.Date.IsZero() {
			r.UndatedDebts++
		}
	}
	return r
}
