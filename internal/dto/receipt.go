package dto

import (
	"time"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
)

// ReceiptLineResponse is one row of the receipt table.
type ReceiptLineResponse struct {
	CurrencyCode   string `json:"currencyCode"`
	CurrencyName   string `json:"currencyName"`
	AmountReceived string `json:"amountReceived"`
	RateOffered    string `json:"rateOffered"`
	AmountIssued   string `json:"amountIssued"`
}

// ReceiptResponse defines the receipt returned by the API.
type ReceiptResponse struct {
	Branding      domain.Branding       `json:"branding"`
	SerialNumber  string                `json:"serialNumber"`
	IssuedAt      time.Time             `json:"issuedAt"`
	Date          string                `json:"date"`
	Customer      CustomerResponse      `json:"customer"`
	Lines         []ReceiptLineResponse `json:"lines"`
	Total         string                `json:"total"`
	TotalCurrency string                `json:"totalCurrency"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	lines := make([]ReceiptLineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = ReceiptLineResponse{
			CurrencyCode:   l.CurrencyCode,
			CurrencyName:   l.CurrencyName,
			AmountReceived: l.AmountReceived,
			RateOffered:    l.RateOffered,
			AmountIssued:   l.AmountIssued,
		}
	}
	customer := ToCustomerResponse(&r.Customer)
	return ReceiptResponse{
		Branding:      r.Branding,
		SerialNumber:  r.SerialNumber,
		IssuedAt:      r.IssuedAt,
		Date:          r.Date,
		Customer:      *customer,
		Lines:         lines,
		Total:         r.Total,
		TotalCurrency: domain.LocalCurrencyCode,
	}
}
