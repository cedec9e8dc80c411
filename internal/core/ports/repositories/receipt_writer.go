package repositories

import (
	"context"

	"github.com/SscSPs/money_changer_pos/internal/core/domain"
)

// ReceiptDocumentWriter renders a receipt into a downloadable document.
type ReceiptDocumentWriter interface {
	// WriteReceipt returns the encoded document.
	WriteReceipt(ctx context.Context, receipt *domain.Receipt) ([]byte, error)

	// ContentType is the MIME type of the encoded document.
	ContentType() string

	// FileExtension is the extension used for download file names, without the dot.
	FileExtension() string
}
