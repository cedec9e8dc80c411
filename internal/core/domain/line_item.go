package domain

// LineItemField names an editable field of an exchange row.
type LineItemField string

const (
	FieldCurrencyCode   LineItemField = "currencyCode"
	FieldAmountReceived LineItemField = "amountReceived"
	FieldRateOffered    LineItemField = "rateOffered"
)

// IsValid reports whether f names an editable field.
func (f LineItemField) IsValid() bool {
	switch f {
	case FieldCurrencyCode, FieldAmountReceived, FieldRateOffered:
		return true
	}
	return false
}

// ExchangeLineItem is one currency exchanged within a transaction.
// Amounts are kept as entered; AmountIssued is derived and always carries two decimals once set.
type ExchangeLineItem struct {
	CurrencyCode   string `json:"currencyCode"`
	AmountReceived string `json:"amountReceived"`
	RateOffered    string `json:"rateOffered"`  // LKR per unit
	AmountIssued   string `json:"amountIssued"` // LKR
}

// Get returns the current value of field.
func (li ExchangeLineItem) Get(field LineItemField) string {
	switch field {
	case FieldCurrencyCode:
		return li.CurrencyCode
	case FieldAmountReceived:
		return li.AmountReceived
	case FieldRateOffered:
		return li.RateOffered
	}
	return ""
}

// Set assigns value to field. Unknown fields are ignored.
func (li *ExchangeLineItem) Set(field LineItemField, value string) {
	switch field {
	case FieldCurrencyCode:
		li.CurrencyCode = value
	case FieldAmountReceived:
		li.AmountReceived = value
	case FieldRateOffered:
		li.RateOffered = value
	}
}
