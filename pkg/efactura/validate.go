package efactura

import (
	"bytes"
	"context"
	"io"

	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/parser/ubl"
	"github.com/rezonia/efactura/internal/validation"
)

var registry = ubl.NewRegistry()

// NewValidator creates a reusable validator. It is safe for concurrent use.
func NewValidator(opts ...Option) *Validator {
	return validation.New(opts...)
}

// WithForcedExecution marks which invoices are issued under forced
// execution; their payee is then held to the payee rules.
func WithForcedExecution(fn func(*Invoice) bool) Option {
	return validation.WithForcedExecution(fn)
}

// Validate checks inv with the default validator
func Validate(inv *Invoice) (*Result, error) {
	return validation.Validate(inv)
}

// DecodeUBL reads a UBL 2.1 Invoice or CreditNote
func DecodeUBL(ctx context.Context, r io.Reader) (*Invoice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, model.NewParseError(model.FormatUnknown, "content", "failed to read input", err)
	}
	inv, _, err := registry.Parse(ctx, bytes.TrimSpace(data))
	return inv, err
}

// ValidateUBL decodes and validates a UBL document in one step
func ValidateUBL(ctx context.Context, r io.Reader) (*Result, error) {
	inv, err := DecodeUBL(ctx, r)
	if err != nil {
		return nil, err
	}
	return Validate(inv)
}

// Catalog lists every rule the validator can report
func Catalog() []RuleInfo {
	return validation.Catalog()
}
