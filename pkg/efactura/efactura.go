// Package efactura provides a public API for checking Romanian e-Factura
// invoices against EN 16931 and the RO_CIUS national profile.
//
// Example usage:
//
//	inv, err := efactura.DecodeUBL(ctx, file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := efactura.Validate(inv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range res.Violations {
//	    fmt.Println(v)
//	}
package efactura

import (
	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/validation"
)

// Re-export core types for public API
type (
	Invoice        = model.Invoice
	Party          = model.Party
	Address        = model.Address
	Line           = model.Line
	Period         = model.Period
	TaxBreakdown   = model.TaxBreakdown
	MonetaryTotals = model.MonetaryTotals
	Summary        = model.Summary
	Format         = model.Format
)

// Re-export validation types
type (
	Result    = validation.Result
	Violation = validation.Violation
	Scope     = validation.Scope
	ScopeKind = validation.ScopeKind
	RuleInfo  = validation.RuleInfo
	Validator = validation.Validator
	Option    = validation.Option
)

// Re-export scope kinds
const (
	KindDocument = validation.KindDocument
	KindSeller   = validation.KindSeller
	KindBuyer    = validation.KindBuyer
	KindPayee    = validation.KindPayee
	KindLine     = validation.KindLine
	KindTotals   = validation.KindTotals
)

// Re-export format constants
const (
	FormatUBLInvoice    = model.FormatUBLInvoice
	FormatUBLCreditNote = model.FormatUBLCreditNote
	FormatJSON          = model.FormatJSON
	FormatUnknown       = model.FormatUnknown
)

// Re-export profile constants
const (
	RoCIUSCustomizationID = model.RoCIUSCustomizationID
	CountryRomania        = model.CountryRomania
	CurrencyRON           = model.CurrencyRON
)

// Re-export error types
type (
	ParseError    = model.ParseError
	ContractError = model.ContractError
)

// ErrNilDocument is returned when validation is asked to judge no document
var ErrNilDocument = model.ErrNilDocument
