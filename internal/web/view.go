package web

import (
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/SscSPs/money_changer_pos/internal/dto"
)

// IndexTemplate is the name of the single page template.
const IndexTemplate = "index.tmpl"

// SourceChoice is one radio option of the source-of-funds question.
type SourceChoice struct {
	Value   string
	Label   string
	Checked bool
}

// CurrencyChoice is one option of a row's currency picker.
type CurrencyChoice struct {
	Code  string
	Label string
}

// RowView is one editable exchange row.
type RowView struct {
	Number         int
	Index          int
	CurrencyCode   string
	AmountReceived string
	RateOffered    string
	AmountIssued   string
}

// PageView is everything the counter page renders.
type PageView struct {
	Branding      domain.Branding
	LocalCurrency string
	Step          domain.Step
	Notice        *domain.Notification
	CustomerForm  dto.CustomerRequest
	Customer      *domain.CustomerRecord
	Sources       []SourceChoice
	Currencies    []CurrencyChoice
	Rows          []RowView
	CanRemoveRow  bool
	Receipt       *domain.Receipt
}

// ShowExchange reports whether the exchange form is offered.
func (p PageView) ShowExchange() bool {
	return p.Step == domain.StepCollectingExchange && p.Customer != nil
}

// ShowReceipt reports whether the receipt replaces the forms.
func (p PageView) ShowReceipt() bool {
	return p.Step == domain.StepShowingReceipt && p.Receipt != nil
}

// NewPageView builds the view for state. The customer form is pre-filled from
// the stored record; callers re-rendering a rejected submission override it.
func NewPageView(state *domain.SessionState, currencies []domain.Currency, notice *domain.Notification) PageView {
	view := PageView{
		Branding:      domain.CounterBranding,
		LocalCurrency: domain.LocalCurrencyCode,
		Step:          state.Step,
		Notice:        notice,
		Customer:      state.Customer,
		CustomerForm:  dto.CustomerRequestFromRecord(state.Customer),
		CanRemoveRow:  len(state.LineItems) > 1,
		Receipt:       state.Receipt,
	}

	for _, c := range currencies {
		view.Currencies = append(view.Currencies, CurrencyChoice{Code: c.CurrencyCode, Label: c.DisplayName()})
	}
	for i, item := range state.LineItems {
		view.Rows = append(view.Rows, RowView{
			Number:         i + 1,
			Index:          i,
			CurrencyCode:   item.CurrencyCode,
			AmountReceived: item.AmountReceived,
			RateOffered:    item.RateOffered,
			AmountIssued:   item.AmountIssued,
		})
	}
	view.SetCustomerForm(view.CustomerForm)
	return view
}

// SetCustomerForm replaces the customer form values and refreshes the source choices.
func (p *PageView) SetCustomerForm(form dto.CustomerRequest) {
	p.CustomerForm = form
	p.Sources = p.Sources[:0]
	for _, opt := range domain.SourceOptions() {
		p.Sources = append(p.Sources, SourceChoice{
			Value:   string(opt.Value),
			Label:   opt.Label,
			Checked: string(opt.Value) == form.Source,
		})
	}
}
