package dto

import (
	"strings"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
)

// CustomerRequest carries the customer step form. Rules are checked by the session service
// in field order so the first failure names the first offending field.
type CustomerRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	IDNumber    string `json:"idNumber" form:"idNumber" validate:"required"`
	Source      string `json:"source" form:"source" validate:"required,oneof=vacation relatives tourists unutilized other"`
	OtherSource string `json:"otherSource" form:"otherSource" validate:"required_if=Source other"`
}

// Normalize trims surrounding whitespace from every field.
func (r CustomerRequest) Normalize() CustomerRequest {
	return CustomerRequest{
		Name:        strings.TrimSpace(r.Name),
		IDNumber:    strings.TrimSpace(r.IDNumber),
		Source:      strings.TrimSpace(r.Source),
		OtherSource: strings.TrimSpace(r.OtherSource),
	}
}

// ToCustomerRecord converts a validated request. OtherSource is dropped unless the source is "other".
func (r CustomerRequest) ToCustomerRecord() domain.CustomerRecord {
	rec := domain.CustomerRecord{
		Name:     r.Name,
		IDNumber: r.IDNumber,
		Source:   domain.SourceOfFunds(r.Source),
	}
	if rec.Source == domain.SourceOther {
		rec.OtherSource = r.OtherSource
	}
	return rec
}

// CustomerResponse defines the customer data returned by the API.
type CustomerResponse struct {
	Name        string `json:"name"`
	IDNumber    string `json:"idNumber"`
	Source      string `json:"source"`
	OtherSource string `json:"otherSource,omitempty"`
	SourceLabel string `json:"sourceLabel"`
}

// ToCustomerResponse converts a domain.CustomerRecord to CustomerResponse DTO
func ToCustomerResponse(c *domain.CustomerRecord) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		Name:        c.Name,
		IDNumber:    c.IDNumber,
		Source:      string(c.Source),
		OtherSource: c.OtherSource,
		SourceLabel: c.SourceDescription(),
	}
}

// CustomerRequestFromRecord pre-fills the customer form from a stored record.
func CustomerRequestFromRecord(c *domain.CustomerRecord) CustomerRequest {
	if c == nil {
		return CustomerRequest{}
	}
	return CustomerRequest{
		Name:        c.Name,
		IDNumber:    c.IDNumber,
		Source:      string(c.Source),
		OtherSource: c.OtherSource,
	}
}
