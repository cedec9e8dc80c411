package xlsx

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
	portsrepo "github.com/SscSPs/money_changer_pos/internal/core/ports/repositories"
	"github.com/SscSPs/money_changer_pos/internal/utils/accounting"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the receipt.
const SheetName = "Receipt"

// amountFormat is the built-in "#,##0.00" number format.
const amountFormat = 4

// ReceiptWriter renders receipts as single-sheet XLSX workbooks.
type ReceiptWriter struct{}

// NewReceiptWriter creates the writer.
func NewReceiptWriter() *ReceiptWriter {
	return &ReceiptWriter{}
}

var _ portsrepo.ReceiptDocumentWriter = (*ReceiptWriter)(nil)

func (w *ReceiptWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (w *ReceiptWriter) FileExtension() string {
	return "xlsx"
}

func (w *ReceiptWriter) WriteReceipt(_ context.Context, receipt *domain.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name receipt sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create total style: %w", err)
	}

	sw := &sheetWriter{f: f}
	sw.text(1, 1, receipt.Branding.Name, boldStyle)
	sw.text(2, 1, receipt.Branding.Tagline, 0)
	sw.text(3, 1, receipt.Branding.Address, 0)
	sw.text(4, 1, receipt.Branding.Phone, 0)
	sw.text(6, 1, "CUSTOMER RECEIPT", boldStyle)

	sw.text(7, 1, "Serial No:", 0)
	sw.text(7, 2, receipt.SerialNumber, 0)
	sw.text(8, 1, "Date:", 0)
	sw.text(8, 2, receipt.Date, 0)

	sw.text(10, 1, "Name:", 0)
	sw.text(10, 2, receipt.Customer.Name, 0)
	sw.text(11, 1, "NIC/Passport No:", 0)
	sw.text(11, 2, receipt.Customer.IDNumber, 0)
	sw.text(12, 1, "Source of Currency:", 0)
	sw.text(12, 2, receipt.SourceLabel, 0)

	headerRow := 14
	for col, title := range []string{"Currency Type", "Amount Received", "Rate (LKR)", "Amount Issued (LKR)"} {
		sw.text(headerRow, col+1, title, boldStyle)
	}

	row := headerRow + 1
	for _, line := range receipt.Lines {
		sw.text(row, 1, line.CurrencyCode, 0)
		sw.amount(row, 2, line.AmountReceived, amountStyle)
		sw.amount(row, 3, line.RateOffered, amountStyle)
		sw.amount(row, 4, line.AmountIssued, amountStyle)
		row++
	}
	sw.text(row, 3, "Total Amount (LKR):", boldStyle)
	sw.amount(row, 4, receipt.Total, totalStyle)

	row += 3
	sw.text(row, 1, "Signature of the Customer", 0)
	sw.text(row, 3, "Signature and Stamp of Authorized Money Changer", 0)

	if sw.err != nil {
		return nil, fmt.Errorf("failed to write receipt cells: %w", sw.err)
	}
	if err := f.SetColWidth(SheetName, "A", "D", 24); err != nil {
		return nil, fmt.Errorf("failed to size receipt columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode receipt workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first cell error so the layout code stays linear.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (s *sheetWriter) text(row, col int, value string, style int) {
	s.set(row, col, value, style)
}

func (s *sheetWriter) amount(row, col int, raw string, style int) {
	d, _ := accounting.ParseStoredAmount(raw)
	s.set(row, col, d.InexactFloat64(), style)
}

func (s *sheetWriter) set(row, col int, value any, style int) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetCellValue(SheetName, cell, value); err != nil {
		s.err = err
		return
	}
	if style != 0 {
		s.err = s.f.SetCellStyle(SheetName, cell, cell, style)
	}
}
