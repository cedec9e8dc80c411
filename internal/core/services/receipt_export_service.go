package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
)

type receiptExportService struct {
	BaseService
	sessions portssvc.SessionReaderSvc
	writer   portsrepo.ReceiptDocumentWriter
}

// NewReceiptExportService creates a service that encodes receipts with writer.
func NewReceiptExportService(sessions portssvc.SessionReaderSvc, writer portsrepo.ReceiptDocumentWriter) portssvc.ReceiptExportSvc {
	return &receiptExportService{sessions: sessions, writer: writer}
}

func (s *receiptExportService) ExportReceipt(ctx context.Context, sessionID string) ([]byte, string, string, error) {
	receipt, err := s.sessions.GetReceipt(ctx, sessionID)
	if err != nil {
		return nil, "", "", err
	}

	data, err := s.writer.WriteReceipt(ctx, receipt)
	if err != nil {
		s.LogError(ctx, err, "Failed to write receipt document", slog.String("serial_number", receipt.SerialNumber))
		return nil, "", "", fmt.Errorf("failed to export receipt in service: %w", err)
	}

	fileName := fmt.Sprintf("receipt-%s.%s", receipt.SerialNumber, s.writer.FileExtension())
	return data, s.writer.ContentType(), fileName, nil
}
