package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/money_changer_pos/internal/apperrors"
	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/dto"
	"github.com/SscSPs/money_changer_pos/internal/utils"
	"github.com/SscSPs/money_changer_pos/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	noticeCustomerSaved        = "Customer information saved"
	noticeTransactionCompleted = "Transaction completed successfully"
)

// sessionService drives the three-step counter workflow for one browser session.
type sessionService struct {
	BaseService
	sessionRepo    portsrepo.SessionRepositoryFacade
	currencyReader portssvc.CurrencyReaderSvc
	validate       *validator.Validate
	now            func() time.Time
	newSerial      func() (string, error)
	tracker        portssvc.EventTracker
}

// SessionServiceOption is a functional option for configuring the session service
type SessionServiceOption func(*sessionService)

// WithClock overrides the time source used for receipts and activity stamps.
func WithClock(now func() time.Time) SessionServiceOption {
	return func(s *sessionService) {
		s.now = now
	}
}

// WithSerialGenerator overrides the receipt serial number generator.
func WithSerialGenerator(gen func() (string, error)) SessionServiceOption {
	return func(s *sessionService) {
		s.newSerial = gen
	}
}

// WithEventTracker adds an analytics sink for workflow events.
func WithEventTracker(tracker portssvc.EventTracker) SessionServiceOption {
	return func(s *sessionService) {
		s.tracker = tracker
	}
}

// NewSessionService creates a new session service with the provided options
func NewSessionService(sessionRepo portsrepo.SessionRepositoryFacade, currencyReader portssvc.CurrencyReaderSvc, options ...SessionServiceOption) portssvc.SessionSvcFacade {
	svc := &sessionService{
		sessionRepo:    sessionRepo,
		currencyReader: currencyReader,
		validate:       newValidator(currencyReader),
		now:            time.Now,
		newSerial: func() (string, error) {
			return utils.GenerateSerialToken(SerialTokenLength)
		},
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) StartSession(ctx context.Context) (*domain.SessionState, error) {
	state := domain.NewSessionState(uuid.NewString(), s.now())
	if err := s.sessionRepo.SaveSession(ctx, state); err != nil {
		s.LogError(ctx, err, "Failed to save new session")
		return nil, fmt.Errorf("failed to start session in service: %w", err)
	}
	s.LogDebug(ctx, "Session started", slog.String("session_id", state.SessionID))
	return state.Clone(), nil
}

func (s *sessionService) ResumeSession(ctx context.Context, sessionID string) (*domain.SessionState, bool, error) {
	if sessionID != "" {
		state, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
		if err == nil {
			return state, false, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load session", slog.String("session_id", sessionID))
			return nil, false, fmt.Errorf("failed to resume session in service: %w", err)
		}
	}
	state, err := s.StartSession(ctx)
	if err != nil {
		return nil, false, err
	}
	return state, true, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	state, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session in service: %w", err)
	}
	return state, nil
}

func (s *sessionService) GetReceipt(ctx context.Context, sessionID string) (*domain.Receipt, error) {
	state, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !state.ReceiptReady() {
		return nil, fmt.Errorf("receipt requested in step %s: %w", state.Step, apperrors.ErrInvalidTransition)
	}
	return state.Receipt, nil
}

func (s *sessionService) Reset(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	state, err := s.update(ctx, sessionID, "reset session", func(st *domain.SessionState) error {
		st.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.track(sessionID, "session_reset", nil)
	return state, nil
}

func (s *sessionService) SubmitCustomer(ctx context.Context, sessionID string, req dto.CustomerRequest) (*domain.SessionState, error) {
	req = req.Normalize()
	state, err := s.update(ctx, sessionID, "submit customer", func(st *domain.SessionState) error {
		if st.Step == domain.StepShowingReceipt {
			return fmt.Errorf("customer submitted in step %s: %w", st.Step, apperrors.ErrInvalidTransition)
		}
		if err := validateCustomer(ctx, s.validate, req); err != nil {
			return err
		}

		record := req.ToCustomerRecord()
		st.Customer = &record
		if st.Step == domain.StepCollectingCustomer {
			st.Step = domain.StepCollectingExchange
			st.LineItems = []domain.ExchangeLineItem{{}}
		}
		st.Notice = &domain.Notification{Message: noticeCustomerSaved, Level: domain.NoticeSuccess}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.track(sessionID, "customer_captured", map[string]any{"source": req.Source})
	return state, nil
}

func (s *sessionService) AddRow(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	return s.update(ctx, sessionID, "add exchange row", func(st *domain.SessionState) error {
		if err := requireStep(st, domain.StepCollectingExchange, "add row"); err != nil {
			return err
		}
		st.LineItems = append(st.LineItems, domain.ExchangeLineItem{})
		return nil
	})
}

func (s *sessionService) RemoveRow(ctx context.Context, sessionID string, index int) (*domain.SessionState, error) {
	return s.update(ctx, sessionID, "remove exchange row", func(st *domain.SessionState) error {
		if err := requireStep(st, domain.StepCollectingExchange, "remove row"); err != nil {
			return err
		}
		if err := checkRowIndex(st, index); err != nil {
			return err
		}
		// The last remaining row is never removed.
		if len(st.LineItems) <= 1 {
			return nil
		}
		st.LineItems = append(st.LineItems[:index], st.LineItems[index+1:]...)
		return nil
	})
}

func (s *sessionService) EditField(ctx context.Context, sessionID string, index int, field domain.LineItemField, value string) (*domain.SessionState, error) {
	return s.update(ctx, sessionID, "edit exchange row", func(st *domain.SessionState) error {
		if err := requireStep(st, domain.StepCollectingExchange, "edit row"); err != nil {
			return err
		}
		if !field.IsValid() {
			return apperrors.NewFieldError(apperrors.ErrValidation, "field", fmt.Sprintf(msgUnknownFieldFmt, string(field)))
		}
		if err := checkRowIndex(st, index); err != nil {
			return err
		}
		applyEdit(&st.LineItems[index], field, value)
		return nil
	})
}

func (s *sessionService) SyncRows(ctx context.Context, sessionID string, rows []dto.LineItemRequest) (*domain.SessionState, error) {
	return s.update(ctx, sessionID, "sync exchange rows", func(st *domain.SessionState) error {
		if err := requireStep(st, domain.StepCollectingExchange, "sync rows"); err != nil {
			return err
		}
		if len(rows) != len(st.LineItems) {
			return apperrors.NewFieldError(apperrors.ErrValidation, "rows", msgRowsOutOfDate)
		}
		for i, row := range rows {
			item := &st.LineItems[i]
			applyEdit(item, domain.FieldCurrencyCode, row.CurrencyCode)
			applyEdit(item, domain.FieldAmountReceived, row.AmountReceived)
			applyEdit(item, domain.FieldRateOffered, row.RateOffered)
		}
		return nil
	})
}

func (s *sessionService) SubmitExchange(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	currencies, err := s.currencyReader.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currencies for receipt: %w", err)
	}

	var receipt *domain.Receipt
	state, err := s.update(ctx, sessionID, "submit exchange", func(st *domain.SessionState) error {
		if err := requireStep(st, domain.StepCollectingExchange, "submit exchange"); err != nil {
			return err
		}
		if err := validateLineItems(ctx, s.validate, st.LineItems); err != nil {
			return err
		}

		for i := range st.LineItems {
			accounting.RecalculateAmountIssued(&st.LineItems[i])
		}
		serial, err := s.newSerial()
		if err != nil {
			return fmt.Errorf("failed to generate receipt serial: %w", err)
		}

		receipt = BuildReceipt(*st.Customer, st.LineItems, currencies, serial, s.now())
		st.Receipt = receipt
		st.Step = domain.StepShowingReceipt
		st.Notice = &domain.Notification{Message: noticeTransactionCompleted, Level: domain.NoticeSuccess}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Receipt generated",
		slog.String("session_id", sessionID),
		slog.String("serial_number", receipt.SerialNumber),
		slog.Int("line_items", len(receipt.Lines)),
		slog.String("total", receipt.Total))
	s.track(sessionID, "receipt_generated", map[string]any{
		"line_items": len(receipt.Lines),
		"total":      receipt.Total,
	})
	return state, nil
}

func (s *sessionService) Notify(ctx context.Context, sessionID string, message string, level domain.NoticeLevel) error {
	_, err := s.update(ctx, sessionID, "store notice", func(st *domain.SessionState) error {
		st.Notice = &domain.Notification{Message: message, Level: level}
		return nil
	})
	return err
}

func (s *sessionService) TakeNotice(ctx context.Context, sessionID string) (*domain.Notification, error) {
	var notice *domain.Notification
	_, err := s.update(ctx, sessionID, "take notice", func(st *domain.SessionState) error {
		notice = st.Notice
		st.Notice = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notice, nil
}

// update runs fn through the repository and stamps activity on success.
func (s *sessionService) update(ctx context.Context, sessionID string, op string, fn portsrepo.SessionMutator) (*domain.SessionState, error) {
	state, err := s.sessionRepo.UpdateSession(ctx, sessionID, func(st *domain.SessionState) error {
		if err := fn(st); err != nil {
			return err
		}
		st.LastSeenAt = s.now()
		return nil
	})
	if err != nil {
		if isUserError(err) {
			s.LogWarn(ctx, err, "Session operation rejected", slog.String("operation", op), slog.String("session_id", sessionID))
		} else {
			s.LogError(ctx, err, "Session operation failed", slog.String("operation", op), slog.String("session_id", sessionID))
		}
		return nil, fmt.Errorf("failed to %s in service: %w", op, err)
	}
	return state, nil
}

func (s *sessionService) track(sessionID, event string, props map[string]any) {
	if s.tracker == nil {
		return
	}
	s.tracker.Track(sessionID, event, props)
}

// applyEdit sets field and recomputes the issued amount when an amount input changed.
func applyEdit(item *domain.ExchangeLineItem, field domain.LineItemField, value string) {
	// currency codes are looked up by exact key when the receipt is built
	if field == domain.FieldCurrencyCode {
		value = strings.TrimSpace(value)
	}
	if item.Get(field) == value {
		return
	}
	item.Set(field, value)
	if field == domain.FieldAmountReceived || field == domain.FieldRateOffered {
		accounting.RecalculateAmountIssued(item)
	}
}

func requireStep(st *domain.SessionState, want domain.Step, op string) error {
	if st.Step != want {
		return fmt.Errorf("%s in step %s: %w", op, st.Step, apperrors.ErrInvalidTransition)
	}
	return nil
}

func checkRowIndex(st *domain.SessionState, index int) error {
	if index < 0 || index >= len(st.LineItems) {
		return apperrors.NewRowError(apperrors.ErrValidation, index+1, "index", fmt.Sprintf(msgRowMissingFmt, index+1))
	}
	return nil
}

func isUserError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInvalidTransition) ||
		errors.Is(err, apperrors.ErrNotFound)
}
