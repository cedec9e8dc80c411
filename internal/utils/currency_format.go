package utils

import (
	"github.com/SscSPs/money_changer_pos/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly two decimals.
// Example: 12.3456 returns "12.35", 300 returns "300.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(accounting.IssuedPrecision)
}

// FormatAmountString parses raw and renders it with two decimals.
// Blank or unparseable input is rendered as "0.00".
func FormatAmountString(raw string) string {
	d, _ := accounting.ParseStoredAmount(raw)
	return FormatAmount(d)
}
