package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branding is the fixed institutional header printed on every page and receipt.
type Branding struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CounterBranding identifies the money changer.
var CounterBranding = Branding{
	Name:    "PEARL CITY HOTEL (PVT) LTD",
	Tagline: "AUTHORIZED FOREIGN MONEY CHANGER",
	Address: "17, Baudhaloka Mawatha, Colombo - 04",
	Phone:   "Tel: 0114523800 (Auto Lines)",
}

// LocalCurrencyCode is the currency paid out by the counter.
const LocalCurrencyCode = "LKR"

// ReceiptDateLayout renders dates as dd/mm/yyyy.
const ReceiptDateLayout = "02/01/2006"

// ReceiptLine is one printed row of the exchange table. Amounts are formatted to two decimals.
type ReceiptLine struct {
	CurrencyCode   string `json:"currencyCode"`
	CurrencyName   string `json:"currencyName"`
	Symbol         string `json:"symbol"`
	AmountReceived string `json:"amountReceived"`
	RateOffered    string `json:"rateOffered"`
	AmountIssued   string `json:"amountIssued"`
}

// Receipt is the printable customer receipt for a completed transaction.
// SerialNumber is a cosmetic random token, not a unique identifier.
type Receipt struct {
	Branding     Branding        `json:"branding"`
	SerialNumber string          `json:"serialNumber"`
	IssuedAt     time.Time       `json:"issuedAt"`
	Date         string          `json:"date"`
	Customer     CustomerRecord  `json:"customer"`
	SourceLabel  string          `json:"sourceLabel"`
	Lines        []ReceiptLine   `json:"lines"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Total        string          `json:"total"`
}

// Clone returns a deep copy of the receipt.
func (r *Receipt) Clone() *Receipt {
	c := *r
	c.Lines = make([]ReceiptLine, len(r.Lines))
	copy(c.Lines, r.Lines)
	return &c
}
