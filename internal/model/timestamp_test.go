package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "RFC3339 with millis",
			input:  "2024-01-05T09:30:00.000Z",
			want:   time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "RFC3339 without fraction",
			input:  "2024-01-05T09:30:00Z",
			want:   time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "datetime-local form input",
			input:  "2024-01-05T09:30",
			want:   time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "bare date",
			input:  "2024-01-05",
			want:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "garbage is zero, not an error",
			input:  "not-a-date",
			wantOK: false,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Time.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	orig := NewTimestamp(time.Date(2024, 3, 15, 18, 45, 30, 0, time.UTC))

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Timestamp
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.Equal(orig.Time))
}

func TestTimestampUnmarshalMalformed(t *testing.T) {
	// A record with a broken date must still decode; only the date is lost.
	var txn Transaction
	blob := []byte(`{"id":"t1","type":"INCOME","amount":100,"category":"Salary","description":"","date":"yesterday-ish"}`)

	require.NoError(t, json.Unmarshal(blob, &txn))
	assert.Equal(t, "t1", txn.ID)
	assert.True(t, txn.Date.IsZero())
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestSameMonth(t *testing.T) {
	ref := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.True(t, NewTimestamp(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).SameMonth(ref))
	assert.True(t, NewTimestamp(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)).SameMonth(ref))
	assert.False(t, NewTimestamp(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)).SameMonth(ref))
	assert.False(t, NewTimestamp(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).SameMonth(ref))
	assert.False(t, NewTimestamp(time.Date(2023, 2, 14, 12, 0, 0, 0, time.UTC)).SameMonth(ref))
	assert.False(t, Timestamp{}.SameMonth(ref))
}
