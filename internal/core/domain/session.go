package domain

import "time"

// Step is the position of a session in the counter workflow.
type Step string

const (
	StepCollectingCustomer Step = "COLLECTING_CUSTOMER"
	StepCollectingExchange Step = "COLLECTING_EXCHANGE"
	StepShowingReceipt     Step = "SHOWING_RECEIPT"
)

// NoticeLevel is the severity of a transient notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notification is a one-shot message shown on the next page render.
type Notification struct {
	Message string      `json:"message"`
	Level   NoticeLevel `json:"level"`
}

// SessionState is everything the counter remembers about one in-progress transaction.
type SessionState struct {
	SessionID  string             `json:"sessionID"`
	Step       Step               `json:"step"`
	Customer   *CustomerRecord    `json:"customer,omitempty"`
	LineItems  []ExchangeLineItem `json:"lineItems"`
	Receipt    *Receipt           `json:"receipt,omitempty"`
	Notice     *Notification      `json:"notice,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	LastSeenAt time.Time          `json:"lastSeenAt"`
}

// NewSessionState returns an empty session positioned at the customer step.
func NewSessionState(sessionID string, now time.Time) *SessionState {
	return &SessionState{
		SessionID:  sessionID,
		Step:       StepCollectingCustomer,
		LineItems:  []ExchangeLineItem{},
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// ReceiptReady reports whether the receipt is being shown.
func (s *SessionState) ReceiptReady() bool {
	return s.Step == StepShowingReceipt && s.Receipt != nil
}

// Reset clears the transaction and returns the session to the customer step.
// Any pending notice is kept so the reset can be acknowledged.
func (s *SessionState) Reset() {
	s.Step = StepCollectingCustomer
	s.Customer = nil
	s.LineItems = []ExchangeLineItem{}
	s.Receipt = nil
}

// Clone returns a deep copy of the session.
func (s *SessionState) Clone() *SessionState {
	c := *s
	if s.Customer != nil {
		cust := *s.Customer
		c.Customer = &cust
	}
	c.LineItems = make([]ExchangeLineItem, len(s.LineItems))
	copy(c.LineItems, s.LineItems)
	if s.Receipt != nil {
		c.Receipt = s.Receipt.Clone()
	}
	if s.Notice != nil {
		n := *s.Notice
		c.Notice = &n
	}
	return &c
}
