package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *domain.SessionState {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	st := domain.NewSessionState("s-1", now)
	st.Step = domain.StepShowingReceipt
	st.Customer = &domain.CustomerRecord{Name: "John Doe", IDNumber: "N123", Source: domain.SourceTourists}
	st.LineItems = []domain.ExchangeLineItem{{CurrencyCode: "USD", AmountReceived: "1", RateOffered: "300", AmountIssued: "300.00"}}
	st.Receipt = &domain.Receipt{
		SerialNumber: "ABC123XYZ",
		Lines:        []domain.ReceiptLine{{CurrencyCode: "USD", AmountIssued: "300.00"}},
		TotalAmount:  decimal.RequireFromString("300"),
		Total:        "300.00",
	}
	st.Notice = &domain.Notification{Message: "done", Level: domain.NoticeSuccess}
	return st
}

func TestNewSessionState(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	st := domain.NewSessionState("abc", now)

	assert.Equal(t, "abc", st.SessionID)
	assert.Equal(t, domain.StepCollectingCustomer, st.Step)
	assert.Nil(t, st.Customer)
	assert.Empty(t, st.LineItems)
	assert.NotNil(t, st.LineItems)
	assert.Nil(t, st.Receipt)
	assert.Equal(t, now, st.CreatedAt)
	assert.Equal(t, now, st.LastSeenAt)
	assert.False(t, st.ReceiptReady())
}

func TestSessionState_Reset(t *testing.T) {
	st := sampleSession()
	require.True(t, st.ReceiptReady())

	st.Reset()

	assert.Equal(t, domain.StepCollectingCustomer, st.Step)
	assert.Nil(t, st.Customer)
	assert.Empty(t, st.LineItems)
	assert.Nil(t, st.Receipt)
	assert.False(t, st.ReceiptReady())
	assert.NotNil(t, st.Notice, "reset keeps the pending notice")
}

func TestSessionState_CloneIsDeep(t *testing.T) {
	st := sampleSession()
	c := st.Clone()
	require.Equal(t, st, c)

	c.Customer.Name = "Jane"
	c.LineItems[0].AmountIssued = "1.00"
	c.Receipt.Lines[0].AmountIssued = "2.00"
	c.Notice.Message = "changed"

	assert.Equal(t, "John Doe", st.Customer.Name)
	assert.Equal(t, "300.00", st.LineItems[0].AmountIssued)
	assert.Equal(t, "300.00", st.Receipt.Lines[0].AmountIssued)
	assert.Equal(t, "done", st.Notice.Message)
}

func TestCustomerRecord_SourceDescription(t *testing.T) {
	tests := []struct {
		name   string
		record domain.CustomerRecord
		want   string
	}{
		{
			name:   "labelled source",
			record: domain.CustomerRecord{Source: domain.SourceTourists},
			want:   "Foreign tourists (directly or through Tour Guides)",
		},
		{
			name:   "other uses free text",
			record: domain.CustomerRecord{Source: domain.SourceOther, OtherSource: "Lottery winnings"},
			want:   "Lottery winnings",
		},
		{
			name:   "unknown source",
			record: domain.CustomerRecord{Source: "bogus"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.SourceDescription())
		})
	}
}

func TestSourceOptions(t *testing.T) {
	opts := domain.SourceOptions()
	require.Len(t, opts, 5)
	assert.Equal(t, domain.SourceVacation, opts[0].Value)
	assert.Equal(t, domain.SourceOther, opts[4].Value)

	opts[0].Label = "mutated"
	assert.NotEqual(t, "mutated", domain.SourceOptions()[0].Label)

	assert.True(t, domain.SourceRelatives.IsValid())
	assert.False(t, domain.SourceOfFunds("").IsValid())
}

func TestExchangeLineItem_GetSet(t *testing.T) {
	var item domain.ExchangeLineItem
	item.Set(domain.FieldCurrencyCode, "EUR")
	item.Set(domain.FieldAmountReceived, "10")
	item.Set(domain.FieldRateOffered, "320.5")
	item.Set("amountIssued", "999")

	assert.Equal(t, "EUR", item.Get(domain.FieldCurrencyCode))
	assert.Equal(t, "10", item.Get(domain.FieldAmountReceived))
	assert.Equal(t, "320.5", item.Get(domain.FieldRateOffered))
	assert.Empty(t, item.AmountIssued, "amountIssued is not an editable field")
	assert.False(t, domain.LineItemField("amountIssued").IsValid())
}

func TestCurrency_DisplayName(t *testing.T) {
	c := domain.Currency{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$"}
	assert.Contains(t, c.DisplayName(), "USD")
	assert.Contains(t, c.DisplayName(), "US Dollar")
}
