package ubl

import (
	"bytes"
	"context"
	"io"

	"github.com/rezonia/efactura/internal/model"
)

// UBL 2.1 root namespaces
const (
	InvoiceNamespace    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	CreditNoteNamespace = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
)

// Adapter decodes one UBL document type into an Invoice
type Adapter interface {
	// Parse decodes XML content into Invoice
	Parse(ctx context.Context, r io.Reader) (*model.Invoice, error)

	// CanParse returns true if adapter can handle this content
	CanParse(content []byte) bool

	// Format returns the document format handled by the adapter
	Format() model.Format
}

// Registry holds all registered adapters
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates registry with the Invoice and CreditNote adapters
func NewRegistry() *Registry {
	return &Registry{
		adapters: []Adapter{
			NewCreditNoteAdapter(),
			NewInvoiceAdapter(),
		},
	}
}

// Detect identifies the document type from XML content
func (r *Registry) Detect(content []byte) (Adapter, error) {
	for _, a := range r.adapters {
		if a.CanParse(content) {
			return a, nil
		}
	}
	return nil, model.NewParseError(model.FormatUnknown, "root", "unknown XML document, expected UBL Invoice or CreditNote", nil)
}

// Parse decodes XML using the matching adapter
func (r *Registry) Parse(ctx context.Context, content []byte) (*model.Invoice, model.Format, error) {
	adapter, err := r.Detect(content)
	if err != nil {
		return nil, model.FormatUnknown, err
	}
	inv, err := adapter.Parse(ctx, bytes.NewReader(content))
	return inv, adapter.Format(), err
}

// RegisterAdapter adds a custom adapter to the registry
func (r *Registry) RegisterAdapter(a Adapter) {
	// Custom adapters take priority
	r.adapters = append([]Adapter{a}, r.adapters...)
}

// GetAdapter returns the adapter for a specific format
func (r *Registry) GetAdapter(format model.Format) Adapter {
	for _, a := range r.adapters {
		if a.Format() == format {
			return a
		}
	}
	return nil
}

// IsXML reports whether content looks like an XML document
func IsXML(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return bytes.HasPrefix(trimmed, []byte("<"))
}
