package services

import (
	"context"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	"github.com/SscSPs/money_changer_pos/internal/dto"
)

// SessionReaderSvc defines read operations on a counter session
type SessionReaderSvc interface {
	// GetSession returns the current state of the session.
	GetSession(ctx context.Context, sessionID string) (*domain.SessionState, error)

	// GetReceipt returns the receipt once the session is showing it.
	GetReceipt(ctx context.Context, sessionID string) (*domain.Receipt, error)
}

// SessionLifecycleSvc creates, resumes and resets sessions
type SessionLifecycleSvc interface {
	// StartSession creates an empty session at the customer step.
	StartSession(ctx context.Context) (*domain.SessionState, error)

	// ResumeSession returns the session for sessionID, or a fresh one when it is unknown or expired.
	// The boolean reports whether a new session was started.
	ResumeSession(ctx context.Context, sessionID string) (*domain.SessionState, bool, error)

	// Reset abandons the transaction and returns to the customer step.
	Reset(ctx context.Context, sessionID string) (*domain.SessionState, error)
}

// CustomerStepSvc handles the customer information step
type CustomerStepSvc interface {
	// SubmitCustomer validates and stores the customer record.
	SubmitCustomer(ctx context.Context, sessionID string, req dto.CustomerRequest) (*domain.SessionState, error)
}

// ExchangeStepSvc handles the exchange line-item step. Row indexes are zero-based.
type ExchangeStepSvc interface {
	AddRow(ctx context.Context, sessionID string) (*domain.SessionState, error)
	RemoveRow(ctx context.Context, sessionID string, index int) (*domain.SessionState, error)
	EditField(ctx context.Context, sessionID string, index int, field domain.LineItemField, value string) (*domain.SessionState, error)

	// SyncRows applies every changed field of rows to the stored rows, in order.
	SyncRows(ctx context.Context, sessionID string, rows []dto.LineItemRequest) (*domain.SessionState, error)

	// SubmitExchange validates every row, builds the receipt and moves to the receipt step.
	SubmitExchange(ctx context.Context, sessionID string) (*domain.SessionState, error)
}

// NotificationSvc manages the one-shot notice shown on the next render
type NotificationSvc interface {
	Notify(ctx context.Context, sessionID string, message string, level domain.NoticeLevel) error
	TakeNotice(ctx context.Context, sessionID string) (*domain.Notification, error)
}

// SessionSvcFacade combines all session-related service interfaces
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionLifecycleSvc
	CustomerStepSvc
	ExchangeStepSvc
	NotificationSvc
}

// ReceiptExportSvc encodes the session's receipt as a downloadable document.
type ReceiptExportSvc interface {
	// ExportReceipt returns the document bytes, its MIME type and a suggested file name.
	ExportReceipt(ctx context.Context, sessionID string) ([]byte, string, string, error)
}
