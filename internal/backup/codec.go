// Package backup implements the on-disk export/import format: one JSON
// object for a full snapshot, or a bare JSON array for a selective backup of
// a single record kind. Selective arrays carry no type tag, so import
// classifies them by decoding against each known record schema in a fixed
// priority order.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mdshariful/hishab/internal/model"
)

// Kind identifies what a backup file contains.
type Kind string

// Backup kinds, also used in export file names.
const (
	KindAll          Kind = "all"
	KindTransactions Kind = "transactions"
	KindSavings      Kind = "savings"
	KindDebts        Kind = "debts"
)

// Decode errors.
var (
	ErrParse         = errors.New("backup is not valid JSON")
	ErrNotFullBackup = errors.New("backup is missing profile or settings")
	ErrUnknownShape  = errors.New("unrecognized backup format")
	ErrEmptyBackup   = errors.New("backup contains no records")
)

// Result is a decoded backup: either Full is set (Kind == KindAll) or
// exactly one record slice is populated.
type Result struct {
	Kind         Kind
	Full         *model.AppData
	Transactions []model.Transaction
	Savings      []model.Saving
	Debts        []model.Debt
}

// Encode serializes the snapshot for a full backup. Encode and DecodeFull
// are a lossless round trip.
func Encode(data *model.AppData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return out, nil
}

// EncodeKind serializes one collection for a selective backup, or the full
// snapshot for KindAll.
func EncodeKind(data *model.AppData, kind Kind) ([]byte, error) {
	var v any
	switch kind {
	case KindAll:
		return Encode(data)
	case KindTransactions:
		v = data.Transactions
	case KindSavings:
		v = data.Savings
	case KindDebts:
		v = data.Debts
	default:
		return nil, fmt.Errorf("unknown backup kind %q", kind)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s backup: %w", kind, err)
	}
	return out, nil
}

// Decode attempts a full-snapshot decode first and falls back to selective
// record classification. It never partially succeeds: on any error the
// caller has nothing to apply.
func Decode(blob []byte) (*Result, error) {
	if !json.Valid(blob) {
		return nil, ErrParse
	}

	full, err := DecodeFull(blob)
	if err == nil {
		return &Result{Kind: KindAll, Full: full}, nil
	}
	if !errors.Is(err, ErrNotFullBackup) {
		return nil, err
	}

	return DecodeRecords(blob)
}

// DecodeFull decodes a full-snapshot blob. A blob qualifies only when it is
// a JSON object carrying both a profile and a settings object; anything else
// reports ErrNotFullBackup so the caller can try selective classification.
func DecodeFull(blob []byte) (*model.AppData, error) {
	var probe struct {
		Profile  json.RawMessage `json:"profile"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(blob, &probe); err != nil {
		return nil, ErrNotFullBackup
	}
	if len(probe.Profile) == 0 || len(probe.Settings) == 0 {
		return nil, ErrNotFullBackup
	}

	var data model.AppData
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	data.Normalize()
	return &data, nil
}

// DecodeRecords classifies a bare record array. Priority order: debts (the
// only kind with a personName), then transactions (type INCOME/EXPENSE),
// then savings (type ADD/SUBTRACT). The whole array must decode against the
// matched schema; an empty array is ErrEmptyBackup because classification is
// impossible, and callers treat it as a no-op rather than a failure.
func DecodeRecords(blob []byte) (*Result, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, ErrUnknownShape
	}
	if len(raw) == 0 {
		return nil, ErrEmptyBackup
	}

	var debts []model.Debt
	if err := json.Unmarshal(blob, &debts); err == nil && debts[0].PersonName != "" {
		return &Result{Kind: KindDebts, Debts: debts}, nil
	}

	var txns []model.Transaction
	if err := json.Unmarshal(blob, &txns); err == nil && txns[0].Type.Valid() {
		return &Result{Kind: KindTransactions, Transactions: txns}, nil
	}

	var savings []model.Saving
	if err := json.Unmarshal(blob, &savings); err == nil && savings[0].Type.Valid() {
		return &Result{Kind: KindSavings, Savings: savings}, nil
	}

	return nil, ErrUnknownShape
}
