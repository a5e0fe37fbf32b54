// Package model defines the record types that make up the ledger snapshot.
package model

import "github.com/shopspring/decimal"

func init() {
	// Backups store amounts as plain JSON numbers, matching the on-device format.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType marks the direction of a cash transaction.
type TransactionType string

// Transaction directions.
const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether the value is one of the known directions.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense entry. Records are immutable once
// created; the only lifecycle operation besides creation is deletion by ID.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        Timestamp       `json:"date"`
}
