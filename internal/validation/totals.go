package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/efactura/internal/decimal"
	"github.com/rezonia/efactura/internal/model"
)

type namedAmount struct {
	name  string
	value *decimal.Decimal
}

func headlineAmounts(inv *model.Invoice) []namedAmount {
	return []namedAmount{
		{"TaxExclusiveAmount", inv.Totals.TaxExclusiveAmount},
		{"TaxInclusiveAmount", inv.Totals.TaxInclusiveAmount},
		{"PayableAmount", inv.Totals.PayableAmount},
	}
}

// overPrecise lists the headline amounts carrying more than two fractional digits
func overPrecise(inv *model.Invoice) []string {
	var names []string
	for _, a := range headlineAmounts(inv) {
		if a.value != nil && !money.HasMaxDecimals(*a.value, MaxMonetaryDecimals) {
			names = append(names, a.name+"="+a.value.String())
		}
	}
	return names
}

var totalsRules = RuleSet[*model.Invoice]{
	{
		Code:    CodeTaxExclusive,
		Message: "Invoice total amount without VAT is required.",
		Must:    func(inv *model.Invoice) bool { return inv.Totals.TaxExclusiveAmount != nil },
	},
	{
		Code:    CodeTaxInclusive,
		Message: "Invoice total amount with VAT is required.",
		Must:    func(inv *model.Invoice) bool { return inv.Totals.TaxInclusiveAmount != nil },
	},
	{
		Code:    CodePayable,
		Message: "Amount due for payment is required.",
		Must:    func(inv *model.Invoice) bool { return inv.Totals.PayableAmount != nil },
	},
	{
		Code:    CodeLineNetSum,
		Message: "Sum of invoice line net amounts must equal invoice total amount without VAT (within 0.01 tolerance).",
		When:    func(inv *model.Invoice) bool { return inv.Totals.TaxExclusiveAmount != nil },
		Must: func(inv *model.Invoice) bool {
			return money.WithinTolerance(inv.LineNetSum(), *inv.Totals.TaxExclusiveAmount)
		},
		Detail: func(inv *model.Invoice) string {
			return fmt.Sprintf("(lines %s, total %s)", inv.LineNetSum(), inv.Totals.TaxExclusiveAmount)
		},
	},
	{
		Code:    CodeInclusiveTotal,
		Message: "Invoice total amount with VAT must equal total without VAT plus VAT total amount (within 0.01 tolerance).",
		When: func(inv *model.Invoice) bool {
			return inv.Totals.TaxInclusiveAmount != nil && inv.Totals.TaxExclusiveAmount != nil
		},
		Must: func(inv *model.Invoice) bool {
			expected := inv.Totals.TaxExclusiveAmount.Add(inv.VatTotal())
			return money.WithinTolerance(*inv.Totals.TaxInclusiveAmount, expected)
		},
		Detail: func(inv *model.Invoice) string {
			expected := inv.Totals.TaxExclusiveAmount.Add(inv.VatTotal())
			return fmt.Sprintf("(expected %s, got %s)", expected, inv.Totals.TaxInclusiveAmount)
		},
	},
}

// vatRules run after the per-breakdown arithmetic
var vatRules = RuleSet[*model.Invoice]{
	{
		Code:    CodeVatTotalSum,
		Message: "Invoice total VAT amount must equal sum of VAT breakdown amounts (within 0.01 tolerance).",
		When: func(inv *model.Invoice) bool {
			return inv.Totals.VatTotal != nil && len(inv.TaxBreakdowns) > 0
		},
		Must: func(inv *model.Invoice) bool {
			return money.WithinTolerance(*inv.Totals.VatTotal, inv.BreakdownTaxSum())
		},
		Detail: func(inv *model.Invoice) string {
			return fmt.Sprintf("(breakdowns %s, total %s)", inv.BreakdownTaxSum(), inv.Totals.VatTotal)
		},
	},
	{
		Code:    CodeRoTwoDecimals,
		Message: "Monetary amounts must have maximum 2 decimal places.",
		Must:    func(inv *model.Invoice) bool { return len(overPrecise(inv)) == 0 },
		Detail: func(inv *model.Invoice) string {
			return "(" + strings.Join(overPrecise(inv), ", ") + ")"
		},
	},
}

func breakdownComputable(tb *model.TaxBreakdown) bool {
	return tb.Rate != nil && tb.TaxableAmount != nil && tb.TaxAmount != nil
}

var breakdownRule = Rule[*model.TaxBreakdown]{
	Code:    CodeBreakdownAmount,
	Message: "VAT breakdown calculations must be correct (within 0.01 tolerance).",
	When:    breakdownComputable,
	Must: func(tb *model.TaxBreakdown) bool {
		return money.WithinTolerance(*tb.TaxAmount, money.CalculateVAT(*tb.TaxableAmount, *tb.Rate))
	},
	Detail: func(tb *model.TaxBreakdown) string {
		return fmt.Sprintf("(expected %s, got %s)",
			money.CalculateVAT(*tb.TaxableAmount, *tb.Rate).StringFixed(2), tb.TaxAmount)
	},
}

// ValidateTotals checks the document totals against the lines and the VAT
// breakdowns. Every offending breakdown produces its own BR-CO-12.
func ValidateTotals(inv *model.Invoice) []Violation {
	if inv == nil {
		return nil
	}
	out := totalsRules.Evaluate(inv, TotalsScope)
	for i := range inv.TaxBreakdowns {
		if v, failed := breakdownRule.Check(&inv.TaxBreakdowns[i], TotalsScope); failed {
			v.Message = fmt.Sprintf("tax breakdown %d: %s", i+1, v.Message)
			out = append(out, v)
		}
	}
	out = append(out, vatRules.Evaluate(inv, TotalsScope)...)
	return out
}
