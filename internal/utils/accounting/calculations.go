package accounting

import (
	"regexp"
	"strings"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IssuedPrecision is the number of decimals kept on local-currency payouts.
const IssuedPrecision = 2

// Bounds on user-entered amounts and rates.
const (
	MaxIntegerDigits  = 12
	MaxFractionDigits = 8
)

// plainDecimal matches an optional minus sign and digits with an optional fraction.
// Exponent notation is not accepted.
var plainDecimal = regexp.MustCompile(`^-?(\d*)(?:\.(\d+))?$`)

// ParseAmount parses a user-entered decimal. Surrounding whitespace is ignored.
// Exponent notation and values outside MaxIntegerDigits/MaxFractionDigits are rejected.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	return parseBounded(raw, MaxIntegerDigits, MaxFractionDigits)
}

// ParseStoredAmount parses an amount already held by a session: a validated
// input or an issued value, which may carry up to twice MaxIntegerDigits.
func ParseStoredAmount(raw string) (decimal.Decimal, bool) {
	return parseBounded(raw, 2*MaxIntegerDigits+1, MaxFractionDigits)
}

func parseBounded(raw string, maxInt, maxFrac int) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	m := plainDecimal.FindStringSubmatch(raw)
	if m == nil || (m[1] == "" && m[2] == "") {
		return decimal.Zero, false
	}
	if len(strings.TrimLeft(m[1], "0")) > maxInt || len(m[2]) > maxFrac {
		return decimal.Zero, false
	}
	if m[1] == "" {
		raw = strings.Replace(raw, ".", "0.", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsPositiveAmount reports whether raw parses to a value strictly greater than zero.
func IsPositiveAmount(raw string) bool {
	d, ok := ParseAmount(raw)
	return ok && d.IsPositive()
}

// CalculateAmountIssued returns received × rate rounded half away from zero to two decimals.
func CalculateAmountIssued(received, rate decimal.Decimal) decimal.Decimal {
	return received.Mul(rate).Round(IssuedPrecision)
}

// RecalculateAmountIssued refreshes item.AmountIssued when both inputs parse.
// It leaves AmountIssued untouched and returns false otherwise.
func RecalculateAmountIssued(item *domain.ExchangeLineItem) bool {
	received, ok := ParseAmount(item.AmountReceived)
	if !ok {
		return false
	}
	rate, ok := ParseAmount(item.RateOffered)
	if !ok {
		return false
	}
	item.AmountIssued = CalculateAmountIssued(received, rate).StringFixed(IssuedPrecision)
	return true
}

// SumAmountIssued totals AmountIssued across items. Blank or unparseable values count as zero.
func SumAmountIssued(items []domain.ExchangeLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if issued, ok := ParseStoredAmount(item.AmountIssued); ok {
			sum = sum.Add(issued)
		}
	}
	return sum.Round(IssuedPrecision)
}
