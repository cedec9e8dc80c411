package accounting

import (
	"testing"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"100", "100", true},
		{" 12.50 ", "12.5", true},
		{"0", "0", true},
		{"-3", "-3", true},
		{"", "0", false},
		{"   ", "0", false},
		{"abc", "0", false},
		{"1,000", "0", false},
		{".5", "0.5", true},
		{"000000000000000001", "1", true},
		{"999999999999.99999999", "999999999999.99999999", true},
		{"1e5", "0", false},
		{"1E-3", "0", false},
		{"1e99999999", "0", false},
		{"1e2000000000", "0", false},
		{"1000000000000", "0", false},
		{"0.123456789", "0", false},
		{"+5", "0", false},
		{".", "0", false},
		{"-", "0", false},
		{"1.2.3", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseStoredAmount(t *testing.T) {
	got, ok := ParseStoredAmount("999999999999999999980000.00")
	assert.True(t, ok)
	assert.Equal(t, "999999999999999999980000.00", got.StringFixed(IssuedPrecision))

	got, ok = ParseStoredAmount("0.12345678")
	assert.True(t, ok)
	assert.Equal(t, "0.12345678", got.String())

	_, ok = ParseStoredAmount("1e30")
	assert.False(t, ok)
	_, ok = ParseStoredAmount("10000000000000000000000000")
	assert.False(t, ok)
}

func TestIsPositiveAmount(t *testing.T) {
	assert.True(t, IsPositiveAmount("0.01"))
	assert.True(t, IsPositiveAmount("300"))
	assert.False(t, IsPositiveAmount("0"))
	assert.False(t, IsPositiveAmount("-1"))
	assert.False(t, IsPositiveAmount(""))
	assert.False(t, IsPositiveAmount("ten"))
	assert.False(t, IsPositiveAmount("1e2000000000"))
}

func TestRecalculateAmountIssued_RejectsOversizedInput(t *testing.T) {
	tests := []struct {
		name     string
		received string
		rate     string
	}{
		{"huge exponent", "1e99999999", "1"},
		{"exponent overflow", "1e2000000000", "1e2000000000"},
		{"too many integer digits", "1234567890123", "2"},
		{"too many fraction digits", "1", "0.000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.ExchangeLineItem{AmountReceived: tt.received, RateOffered: tt.rate, AmountIssued: "12.00"}
			assert.NotPanics(t, func() {
				assert.False(t, RecalculateAmountIssued(&item))
			})
			assert.Equal(t, "12.00", item.AmountIssued)
		})
	}
}

func TestRecalculateAmountIssued_LargestAllowedInputs(t *testing.T) {
	item := domain.ExchangeLineItem{AmountReceived: "999999999999.99999999", RateOffered: "999999999999.99999999"}
	assert.True(t, RecalculateAmountIssued(&item))
	assert.Equal(t, "999999999999999999980000.00", item.AmountIssued)

	got := SumAmountIssued([]domain.ExchangeLineItem{item, {AmountIssued: "0.50"}})
	assert.Equal(t, "999999999999999999980000.50", got.StringFixed(IssuedPrecision))
}

func TestCalculateAmountIssued(t *testing.T) {
	tests := []struct {
		received string
		rate     string
		want     string
	}{
		{"1", "300", "300.00"},
		{"100", "300", "30000.00"},
		{"1.005", "1", "1.01"},
		{"0.125", "1", "0.13"},
		{"33.333", "3", "100.00"},
		{"12.34", "298.765", "3686.76"},
		{"0.1", "0.2", "0.02"},
	}
	for _, tt := range tests {
		t.Run(tt.received+"x"+tt.rate, func(t *testing.T) {
			got := CalculateAmountIssued(decimal.RequireFromString(tt.received), decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.want, got.StringFixed(IssuedPrecision))
		})
	}
}

func TestCalculateAmountIssued_MatchesRoundedProduct(t *testing.T) {
	// Exhaustive over a small grid of cent amounts and rates.
	for a := int64(1); a <= 500; a += 7 {
		for r := int64(1); r <= 40000; r += 1331 {
			received := decimal.New(a, -2)
			rate := decimal.New(r, -2)
			got := CalculateAmountIssued(received, rate)

			assert.True(t, got.Equal(got.Round(IssuedPrecision)), "%s has more than two decimals", got)
			diff := received.Mul(rate).Sub(got).Abs()
			assert.True(t, diff.LessThanOrEqual(decimal.New(5, -3)), "%s x %s = %s", received, rate, got)
		}
	}
}

func TestRecalculateAmountIssued(t *testing.T) {
	item := domain.ExchangeLineItem{AmountReceived: "100"}
	assert.False(t, RecalculateAmountIssued(&item))
	assert.Empty(t, item.AmountIssued)

	item.RateOffered = "300"
	assert.True(t, RecalculateAmountIssued(&item))
	assert.Equal(t, "30000.00", item.AmountIssued)

	item.RateOffered = "oops"
	assert.False(t, RecalculateAmountIssued(&item))
	assert.Equal(t, "30000.00", item.AmountIssued, "stale value kept until inputs parse")
}

func TestSumAmountIssued(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.ExchangeLineItem
		want  string
	}{
		{"no items", nil, "0.00"},
		{"two items", []domain.ExchangeLineItem{{AmountIssued: "150.50"}, {AmountIssued: "49.50"}}, "200.00"},
		{"single", []domain.ExchangeLineItem{{AmountIssued: "300.00"}}, "300.00"},
		{"blank and junk count as zero", []domain.ExchangeLineItem{{AmountIssued: ""}, {AmountIssued: "n/a"}, {AmountIssued: "10.10"}}, "10.10"},
		{"many cents", []domain.ExchangeLineItem{{AmountIssued: "0.10"}, {AmountIssued: "0.20"}, {AmountIssued: "0.30"}}, "0.60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumAmountIssued(tt.items).StringFixed(IssuedPrecision))
		})
	}
}
