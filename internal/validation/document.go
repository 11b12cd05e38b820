// Package validation checks decoded invoices against the EN16931 baseline
// business rules and the Romanian RO_CIUS profile.
//
// Every rule is evaluated; a failed rule never hides a later one. The
// validator holds no mutable state and is safe for concurrent use.
package validation

import (
	"strings"

	"github.com/rezonia/efactura/internal/model"
)

// ForcedExecutionFunc reports whether an invoice is issued under forced
// execution, which tightens the payee rules.
type ForcedExecutionFunc func(*model.Invoice) bool

func neverForced(*model.Invoice) bool { return false }

// Option configures a Validator
type Option func(*Validator)

// WithForcedExecution installs the forced-execution predicate. The default
// treats no invoice as forced execution.
func WithForcedExecution(fn ForcedExecutionFunc) Option {
	return func(v *Validator) {
		if fn != nil {
			v.forcedExecution = fn
		}
	}
}

// Validator runs the full rule set over one invoice at a time
type Validator struct {
	forcedExecution ForcedExecutionFunc
}

// New creates a Validator
func New(opts ...Option) *Validator {
	v := &Validator{forcedExecution: neverForced}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var documentRules = RuleSet[*model.Invoice]{
	{
		Code:    CodeRoCIUS,
		Message: "CustomizationID must be: " + model.RoCIUSCustomizationID,
		Must: func(inv *model.Invoice) bool {
			return inv.CustomizationID == model.RoCIUSCustomizationID
		},
	},
	{
		Code:    CodeInvoiceNumber,
		Message: "Invoice number is required.",
		Must:    func(inv *model.Invoice) bool { return inv.Number != "" },
	},
	{
		Code:    CodeRoNumberDigit,
		Message: "Invoice number must contain at least one digit.",
		Must:    func(inv *model.Invoice) bool { return digitRe.MatchString(inv.Number) },
	},
	{
		Code:    CodeIssueDate,
		Message: "Invoice issue date is required.",
		Must:    func(inv *model.Invoice) bool { return !inv.IssueDate.IsZero() },
	},
	{
		Code:    CodeTypeCode,
		Message: "Invoice type code is required.",
		Must:    func(inv *model.Invoice) bool { return inv.TypeCode != "" },
	},
	{
		Code:    CodeTypeCodeList,
		Message: "Invoice type code must be a valid UNTDID 1001 invoice or credit note code.",
		When:    func(inv *model.Invoice) bool { return inv.TypeCode != "" },
		Must:    func(inv *model.Invoice) bool { return inSet(invoiceTypeCodeSet, inv.TypeCode) },
	},
	{
		Code:    CodeRoTypeCode,
		Message: "Invalid invoice type code. Must be one of: " + strings.Join(RomanianInvoiceTypeCodes, ", "),
		Must:    func(inv *model.Invoice) bool { return inSet(romanianTypeSet, inv.TypeCode) },
	},
	{
		Code:    CodeCurrency,
		Message: "Invoice currency code is required.",
		Must:    func(inv *model.Invoice) bool { return inv.CurrencyCode != "" },
	},
	{
		Code:    CodeRoVatCurrency,
		Message: "When document currency is not RON, VAT accounting currency must be RON.",
		When:    func(inv *model.Invoice) bool { return inv.CurrencyCode != model.CurrencyRON },
		Must:    func(inv *model.Invoice) bool { return inv.TaxCurrencyCode == model.CurrencyRON },
	},
	{
		// not yet enforced: the allowed values are listed but never checked
		Code:    CodeRoVatPointDate,
		Message: "VAT point date code must be one of: " + strings.Join(VatPointDateCodes, ", "),
		When:    func(inv *model.Invoice) bool { return inv.TaxPointDateCode != "" },
		Must:    func(*model.Invoice) bool { return true },
	},
	{
		Code:    CodeDocumentPeriod,
		Message: "Invoice period end date must be greater than or equal to start date.",
		When:    func(inv *model.Invoice) bool { return inv.Period.Bounded() },
		Must:    func(inv *model.Invoice) bool { return inv.Period.Ordered() },
	},
	{
		Code:    CodeLinesRequired,
		Message: "Invoice must have at least one line.",
		Must:    func(inv *model.Invoice) bool { return len(inv.Lines) > 0 },
	},
	{
		Code:    CodeRoMaxLines,
		Message: "Invoice cannot have more than 999 lines.",
		Must:    func(inv *model.Invoice) bool { return len(inv.Lines) <= MaxLines },
	},
}

// Validate evaluates every rule against inv. Violations are data: the error
// is only non-nil when inv itself is missing.
//
// Violations are ordered: document rules, seller, buyer, payee, lines in
// order, then totals.
func (v *Validator) Validate(inv *model.Invoice) (*Result, error) {
	if inv == nil {
		return nil, model.NewContractError("validate", model.ErrNilDocument)
	}

	violations := documentRules.Evaluate(inv, DocumentScope)
	violations = append(violations, ValidateSeller(&inv.Seller)...)
	violations = append(violations, ValidateBuyer(&inv.Buyer)...)
	if inv.Payee != nil {
		violations = append(violations, ValidatePayee(inv.Payee, v.forcedExecution(inv))...)
	}
	for i := range inv.Lines {
		violations = append(violations, ValidateLine(&inv.Lines[i], i+1)...)
	}
	violations = append(violations, ValidateTotals(inv)...)

	return newResult(violations), nil
}

// Validate runs a default Validator over inv
func Validate(inv *model.Invoice) (*Result, error) {
	return New().Validate(inv)
}
