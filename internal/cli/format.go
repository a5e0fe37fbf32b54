package cli

import (
	"github.com/shopspring/decimal"

	"github.com/mdshariful/hishab/internal/model"
)

// TakaSign is the currency marker used everywhere amounts are shown.
const TakaSign = "৳"

// Amount renders a decimal with the currency sign.
func Amount(d decimal.Decimal) string {
	return TakaSign + d.String()
}

// SignedAmount renders a transaction amount with its direction marker and
// color: +৳100 green for income, -৳100 red for expense.
func SignedAmount(tt model.TransactionType, d decimal.Decimal) string {
	if tt == model.Income {
		return IncomeStyle.Render("+" + Amount(d))
	}
	return ExpenseStyle.Render("-" + Amount(d))
}

// SavingAmount renders a savings movement with its direction marker.
func SavingAmount(st model.SavingType, d decimal.Decimal) string {
	if st == model.SavingAdd {
		return IncomeStyle.Render("+" + Amount(d))
	}
	return ExpenseStyle.Render("-" + Amount(d))
}

// DirectionLabel renders a debt direction as the label the app uses.
func DirectionLabel(dir model.DebtDirection) string {
	if dir == model.Receivable {
		return IncomeStyle.Render("I'll Get")
	}
	return ExpenseStyle.Render("I'll Give")
}
