package services

import (
	"time"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/SscSPs/money_changer_pos/internal/utils"
	"github.com/SscSPs/money_changer_pos/internal/utils/accounting"
)

// SerialTokenLength is the number of characters in a receipt serial number.
const SerialTokenLength = 9

// BuildReceipt assembles the printable receipt. It has no side effects: the
// serial number and issue time are supplied by the caller.
func BuildReceipt(customer domain.CustomerRecord, items []domain.ExchangeLineItem, currencies []domain.Currency, serial string, issuedAt time.Time) *domain.Receipt {
	byCode := make(map[string]domain.Currency, len(currencies))
	for _, c := range currencies {
		byCode[c.CurrencyCode] = c
	}

	lines := make([]domain.ReceiptLine, len(items))
	for i, item := range items {
		currency := byCode[item.CurrencyCode]
		lines[i] = domain.ReceiptLine{
			CurrencyCode:   item.CurrencyCode,
			CurrencyName:   currency.Name,
			Symbol:         currency.Symbol,
			AmountReceived: utils.FormatAmountString(item.AmountReceived),
			RateOffered:    utils.FormatAmountString(item.RateOffered),
			AmountIssued:   utils.FormatAmountString(item.AmountIssued),
		}
	}

	total := accounting.SumAmountIssued(items)
	return &domain.Receipt{
		Branding:     domain.CounterBranding,
		SerialNumber: serial,
		IssuedAt:     issuedAt,
		Date:         issuedAt.Format(domain.ReceiptDateLayout),
		Customer:     customer,
		SourceLabel:  customer.SourceDescription(),
		Lines:        lines,
		TotalAmount:  total,
		Total:        utils.FormatAmount(total),
	}
}
