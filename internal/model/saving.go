package model

import "github.com/shopspring/decimal"

// SavingType marks whether a movement adds to or draws from savings.
type SavingType string

// Saving movement kinds.
const (
	SavingAdd      SavingType = "ADD"
	SavingSubtract SavingType = "SUBTRACT"
)

// Valid reports whether the value is one of the known movement kinds.
func (t SavingType) Valid() bool {
	return t == SavingAdd || t == SavingSubtract
}

// Saving is a single deposit into or withdrawal from the savings pot.
type Saving struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        SavingType      `json:"type"`
	Description string          `json:"description"`
	Date        Timestamp       `json:"date"`
}
