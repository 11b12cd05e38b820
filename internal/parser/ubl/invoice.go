package ubl

import (
	"bytes"
	"context"
	"io"

	"github.com/rezonia/efactura/internal/model"
)

// InvoiceAdapter decodes UBL 2.1 Invoice documents
type InvoiceAdapter struct{}

// NewInvoiceAdapter creates a new Invoice adapter
func NewInvoiceAdapter() *InvoiceAdapter {
	return &InvoiceAdapter{}
}

// Format returns the document format
func (a *InvoiceAdapter) Format() model.Format {
	return model.FormatUBLInvoice
}

// CanParse checks for the UBL Invoice namespace
func (a *InvoiceAdapter) CanParse(content []byte) bool {
	return bytes.Contains(content, []byte(InvoiceNamespace))
}

// Parse decodes a UBL Invoice. Malformed dates and amounts are left unset.
func (a *InvoiceAdapter) Parse(ctx context.Context, r io.Reader) (*model.Invoice, error) {
	return invoiceKind.parse(ctx, r)
}
