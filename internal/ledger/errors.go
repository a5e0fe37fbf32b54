package ledger

import "errors"

// Store errors.
var (
	ErrDuplicateParty = errors.New("party already exists")
	ErrEmptyPartyName = errors.New("party name cannot be empty")
)
