package ubl

import (
	"bytes"
	"context"
	"io"

	"github.com/rezonia/efactura/internal/model"
)

// CreditNoteAdapter decodes UBL 2.1 CreditNote documents. Credit notes are
// validated with the same rules as invoices.
type CreditNoteAdapter struct{}

// NewCreditNoteAdapter creates a new CreditNote adapter
func NewCreditNoteAdapter() *CreditNoteAdapter {
	return &CreditNoteAdapter{}
}

// Format returns the document format
func (a *CreditNoteAdapter) Format() model.Format {
	return model.FormatUBLCreditNote
}

// CanParse checks for the UBL CreditNote namespace
func (a *CreditNoteAdapter) CanParse(content []byte) bool {
	return bytes.Contains(content, []byte(CreditNoteNamespace))
}

// Parse decodes a UBL CreditNote
func (a *CreditNoteAdapter) Parse(ctx context.Context, r io.Reader) (*model.Invoice, error) {
	return creditNoteKind.parse(ctx, r)
}
