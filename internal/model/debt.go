package model

import "github.com/shopspring/decimal"

// DebtDirection classifies a debt relationship: RECEIVABLE means the person
// owes the user, PAYABLE means the user owes the person.
type DebtDirection string

// Debt directions.
const (
	Receivable DebtDirection = "RECEIVABLE"
	Payable    DebtDirection = "PAYABLE"
)

// Valid reports whether the value is one of the known directions.
func (d DebtDirection) Valid() bool {
	return d == Receivable || d == Payable
}

// DebtAction records whether an event increased or decreased the outstanding
// balance with a person.
type DebtAction string

// Debt action kinds.
const (
	Taken  DebtAction = "TAKEN"
	Repaid DebtAction = "REPAID"
)

// Valid reports whether the value is one of the known action kinds.
func (a DebtAction) Valid() bool {
	return a == Taken || a == Repaid
}

// Debt is a single debt event against a named person. The direction is
// recorded per event; aggregation derives the person's classification from
// the most recent event by date.
type Debt struct {
	ID          string          `json:"id"`
	Type        DebtDirection   `json:"type"`
	PersonName  string          `json:"personName"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Timestamp       `json:"date"`
	ActionType  DebtAction      `json:"actionType"`
}
