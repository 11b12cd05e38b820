package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/validation"
)

func TestValidateTotals(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Invoice)
		want   []string
	}{
		{
			name:   "consistent",
			mutate: func(*model.Invoice) {},
		},
		{
			name: "missing headline amounts",
			mutate: func(inv *model.Invoice) {
				inv.Totals.TaxExclusiveAmount = nil
				inv.Totals.TaxInclusiveAmount = nil
				inv.Totals.PayableAmount = nil
			},
			want: []string{validation.CodeTaxExclusive, validation.CodeTaxInclusive, validation.CodePayable},
		},
		{
			name:   "line sum within tolerance",
			mutate: func(inv *model.Invoice) { inv.Totals.TaxExclusiveAmount = dec("100.01") },
			want:   nil,
		},
		{
			name: "line sum off",
			mutate: func(inv *model.Invoice) {
				inv.Totals.TaxExclusiveAmount = dec("100.02")
				inv.Totals.TaxInclusiveAmount = dec("119.02")
			},
			want: []string{validation.CodeLineNetSum},
		},
		{
			name: "missing line amount counts as zero",
			mutate: func(inv *model.Invoice) {
				extra := validLine("2")
				extra.NetAmount = nil
				inv.Lines = append(inv.Lines, extra)
			},
			want: nil,
		},
		{
			name:   "vat total recomputed from breakdowns",
			mutate: func(inv *model.Invoice) { inv.Totals.VatTotal = nil },
			want:   nil,
		},
		{
			name:   "vat total disagrees with breakdowns",
			mutate: func(inv *model.Invoice) { inv.Totals.VatTotal = dec("20.00") },
			want:   []string{validation.CodeInclusiveTotal, validation.CodeVatTotalSum},
		},
		{
			name: "breakdown arithmetic off",
			mutate: func(inv *model.Invoice) {
				inv.TaxBreakdowns[0].TaxAmount = dec("18.00")
				inv.Totals.VatTotal = dec("18.00")
				inv.Totals.TaxInclusiveAmount = dec("118.00")
				inv.Totals.PayableAmount = dec("118.00")
			},
			want: []string{validation.CodeBreakdownAmount},
		},
		{
			name: "breakdown without rate is skipped",
			mutate: func(inv *model.Invoice) {
				inv.TaxBreakdowns[0].Rate = nil
			},
			want: nil,
		},
		{
			name:   "three decimals",
			mutate: func(inv *model.Invoice) { inv.Totals.PayableAmount = dec("119.001") },
			want:   []string{validation.CodeRoTwoDecimals},
		},
		{
			name:   "trailing zeros are not significant",
			mutate: func(inv *model.Invoice) { inv.Totals.PayableAmount = dec("119.0000") },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := minimalInvoice()
			tt.mutate(inv)

			violations := validation.ValidateTotals(inv)
			assert.Equal(t, tt.want, codesOf(violations))
			for _, v := range violations {
				assert.Equal(t, validation.TotalsScope, v.Scope)
			}
		})
	}
}

func TestValidateTotals_OneViolationPerBreakdown(t *testing.T) {
	inv := minimalInvoice()
	inv.TaxBreakdowns = []model.TaxBreakdown{
		{Category: "S", Rate: dec("19"), TaxableAmount: dec("100.00"), TaxAmount: dec("25.00")},
		{Category: "S", Rate: dec("9"), TaxableAmount: dec("50.00"), TaxAmount: dec("4.50")},
		{Category: "S", Rate: dec("5"), TaxableAmount: dec("10.00"), TaxAmount: dec("1.00")},
	}
	inv.Totals.VatTotal = nil

	violations := validation.ValidateTotals(inv)

	var breakdown []validation.Violation
	for _, v := range violations {
		if v.Code == validation.CodeBreakdownAmount {
			breakdown = append(breakdown, v)
		}
	}
	require.Len(t, breakdown, 2)
	assert.Contains(t, breakdown[0].Message, "tax breakdown 1:")
	assert.Contains(t, breakdown[0].Message, "expected 19.00")
	assert.Contains(t, breakdown[1].Message, "tax breakdown 3:")
}

func TestValidateTotals_RoundingHalfAwayFromZero(t *testing.T) {
	// 0.25 * 10% = 0.025 rounds up to 0.03
	inv := minimalInvoice()
	inv.TaxBreakdowns = []model.TaxBreakdown{
		{Category: "S", Rate: dec("10"), TaxableAmount: dec("0.25"), TaxAmount: dec("0.03")},
	}
	inv.Totals.VatTotal = nil

	violations := validation.ValidateTotals(inv)
	for _, v := range violations {
		assert.NotEqual(t, validation.CodeBreakdownAmount, v.Code)
	}
}

func TestValidateTotals_TwoDecimalsNamesFields(t *testing.T) {
	inv := minimalInvoice()
	inv.Totals.TaxExclusiveAmount = dec("100.005")
	inv.Totals.PayableAmount = dec("119.005")

	violations := validation.ValidateTotals(inv)

	var found bool
	for _, v := range violations {
		if v.Code != validation.CodeRoTwoDecimals {
			continue
		}
		assert.False(t, found, "expected a single BR-RO-Z2")
		found = true
		assert.Contains(t, v.Message, "TaxExclusiveAmount=100.005")
		assert.Contains(t, v.Message, "PayableAmount=119.005")
		assert.NotContains(t, v.Message, "TaxInclusiveAmount")
	}
	assert.True(t, found)
}

func TestValidateTotals_Nil(t *testing.T) {
	assert.Nil(t, validation.ValidateTotals(nil))
}
