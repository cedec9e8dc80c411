package domain

// Currency represents a foreign currency accepted at the counter.
type Currency struct {
	CurrencyCode string `json:"currencyCode" yaml:"code"` // e.g., "USD"
	Name         string `json:"name" yaml:"name"`         // e.g., "US Dollar"
	Symbol       string `json:"symbol" yaml:"symbol"`     // e.g., "$"
}

// DisplayName returns the label used in currency pickers, e.g. "USD - US Dollar".
func (c Currency) DisplayName() string {
	return c.CurrencyCode + " - " + c.Name
}
