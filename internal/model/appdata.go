package model

import "slices"

// DefaultProfile is the profile a fresh ledger starts with.
var DefaultProfile = Profile{
	Name:  "User00001",
	Email: "mail@example.com",
}

// DefaultSettings are the display preferences a fresh ledger starts with.
var DefaultSettings = Settings{
	Language: LanguageBengali,
	Theme:    ThemeLight,
}

// AppData is the full persisted snapshot: every collection and singleton the
// application owns, serialized as one blob on every mutation.
type AppData struct {
	Transactions []Transaction `json:"transactions"`
	Savings      []Saving      `json:"savings"`
	Debts        []Debt        `json:"debts"`
	Parties      []string      `json:"parties"`
	Profile      Profile       `json:"profile"`
	Settings     Settings      `json:"settings"`
}

// NewAppData returns an empty snapshot with default profile and settings.
func NewAppData() *AppData {
	return &AppData{
		Transactions: []Transaction{},
		Savings:      []Saving{},
		Debts:        []Debt{},
		Parties:      []string{},
		Profile:      DefaultProfile,
		Settings:     DefaultSettings,
	}
}

// Clone returns a copy whose collections are independent of the receiver.
// Records themselves are immutable values, so a shallow element copy is
// sufficient for the store's copy-on-write discipline.
func (d *AppData) Clone() *AppData {
	out := *d
	out.Transactions = slices.Clone(d.Transactions)
	out.Savings = slices.Clone(d.Savings)
	out.Debts = slices.Clone(d.Debts)
	out.Parties = slices.Clone(d.Parties)
	return &out
}

// Normalize fills nil collections, applies default profile/settings to empty
// singletons, and re-establishes the invariant that every debt's person name
// appears in the party list. Used on load and restore paths where the blob
// may predate the invariant.
func (d *AppData) Normalize() {
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Savings == nil {
		d.Savings = []Saving{}
	}
	if d.Debts == nil {
		d.Debts = []Debt{}
	}
	if d.Parties == nil {
		d.Parties = []string{}
	}
	if d.Profile == (Profile{}) {
		d.Profile = DefaultProfile
	}
	if d.Settings == (Settings{}) {
		d.Settings = DefaultSettings
	}
	for _, debt := range d.Debts {
		if debt.PersonName != "" && !slices.Contains(d.Parties, debt.PersonName) {
			d.Parties = append(d.Parties, debt.PersonName)
		}
	}
}
