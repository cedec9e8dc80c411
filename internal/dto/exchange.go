package dto

import (
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
)

// LineItemRequest is one posted exchange row. AmountIssued is never accepted from clients.
type LineItemRequest struct {
	CurrencyCode   string `json:"currencyCode" form:"currencyCode"`
	AmountReceived string `json:"amountReceived" form:"amountReceived"`
	RateOffered    string `json:"rateOffered" form:"rateOffered"`
}

// EditLineItemRequest updates a single field of one row.
type EditLineItemRequest struct {
	Field string `json:"field" binding:"required,oneof=currencyCode amountReceived rateOffered"`
	Value string `json:"value"`
}

// LineItemResponse defines the data returned for an exchange row.
type LineItemResponse struct {
	Index          int    `json:"index"`
	CurrencyCode   string `json:"currencyCode"`
	AmountReceived string `json:"amountReceived"`
	RateOffered    string `json:"rateOffered"`
	AmountIssued   string `json:"amountIssued"`
}

// SessionResponse defines the session state returned by the API.
type SessionResponse struct {
	SessionID    string             `json:"sessionID"`
	Step         domain.Step        `json:"step"`
	Customer     *CustomerResponse  `json:"customer,omitempty"`
	LineItems    []LineItemResponse `json:"lineItems"`
	ReceiptReady bool               `json:"receiptReady"`
	CanRemoveRow bool               `json:"canRemoveRow"`
}

// ToLineItemResponses converts rows to DTOs, preserving order.
func ToLineItemResponses(items []domain.ExchangeLineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, item := range items {
		res[i] = LineItemResponse{
			Index:          i,
			CurrencyCode:   item.CurrencyCode,
			AmountReceived: item.AmountReceived,
			RateOffered:    item.RateOffered,
			AmountIssued:   item.AmountIssued,
		}
	}
	return res
}

// ToSessionResponse converts a domain.SessionState to SessionResponse DTO
func ToSessionResponse(s *domain.SessionState) SessionResponse {
	return SessionResponse{
		SessionID:    s.SessionID,
		Step:         s.Step,
		Customer:     ToCustomerResponse(s.Customer),
		LineItems:    ToLineItemResponses(s.LineItems),
		ReceiptReady: s.ReceiptReady(),
		CanRemoveRow: len(s.LineItems) > 1,
	}
}
