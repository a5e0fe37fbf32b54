package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mdshariful/hishab/internal/model"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "৳1000", Amount(decimal.NewFromInt(1000)))
	assert.Equal(t, "৳42.5", Amount(decimal.RequireFromString("42.50")))
	assert.Equal(t, "৳-10", Amount(decimal.NewFromInt(-10)))
}

func TestSignedAmount(t *testing.T) {
	income := SignedAmount(model.Income, decimal.NewFromInt(100))
	assert.True(t, strings.Contains(income, "+৳100"))

	expense := SignedAmount(model.Expense, decimal.NewFromInt(100))
	assert.True(t, strings.Contains(expense, "-৳100"))
}

func TestDirectionLabel(t *testing.T) {
	assert.Contains(t, DirectionLabel(model.Receivable), "I'll Get")
	assert.Contains(t, DirectionLabel(model.Payable), "I'll Give")
}
