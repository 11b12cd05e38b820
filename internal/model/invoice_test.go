package model_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/efactura/internal/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestParty_IsRomanian(t *testing.T) {
	tests := []struct {
		name     string
		party    *model.Party
		expected bool
	}{
		{"nil party", nil, false},
		{"no address", &model.Party{Name: "ACME"}, false},
		{"foreign address", &model.Party{Address: &model.Address{CountryCode: "DE"}}, false},
		{"lowercase code is not RO", &model.Party{Address: &model.Address{CountryCode: "ro"}}, false},
		{"romanian address", &model.Party{Address: &model.Address{CountryCode: "RO"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.party.IsRomanian())
		})
	}
}

func TestInvoice_IsRomanian(t *testing.T) {
	var nilInv *model.Invoice
	assert.False(t, nilInv.IsRomanian())

	inv := &model.Invoice{}
	assert.False(t, inv.IsRomanian())

	inv.CustomizationID = model.RoCIUSCustomizationID
	assert.True(t, inv.IsRomanian())

	inv = &model.Invoice{Buyer: model.Party{Address: &model.Address{CountryCode: "RO"}}}
	assert.True(t, inv.IsRomanian())
}

func TestInvoice_VatTotal(t *testing.T) {
	inv := &model.Invoice{
		TaxBreakdowns: []model.TaxBreakdown{
			{TaxAmount: dec("19.00")},
			{TaxAmount: dec("9.50")},
			{},
		},
	}

	// Recomputed from breakdowns when not supplied
	assert.True(t, inv.VatTotal().Equal(decimal.RequireFromString("28.50")))

	// Supplied value wins
	inv.Totals.VatTotal = dec("30")
	assert.True(t, inv.VatTotal().Equal(decimal.NewFromInt(30)))
	assert.True(t, inv.BreakdownTaxSum().Equal(decimal.RequireFromString("28.5")))
}

func TestInvoice_LineNetSum(t *testing.T) {
	inv := &model.Invoice{
		Lines: []model.Line{
			{NetAmount: dec("100.00")},
			{NetAmount: dec("0.01")},
			{},
		},
	}
	assert.True(t, inv.LineNetSum().Equal(decimal.RequireFromString("100.01")))
}

func TestInvoice_Summary(t *testing.T) {
	inv := &model.Invoice{
		Number:        "FCT-001",
		TypeCode:      "380",
		CurrencyCode:  "RON",
		Seller:        model.Party{Address: &model.Address{CountryCode: "RO"}},
		Lines:         []model.Line{{ID: "1"}, {ID: "2"}},
		TaxBreakdowns: []model.TaxBreakdown{{Category: "S"}},
		Totals:        model.MonetaryTotals{PayableAmount: dec("119.00")},
	}

	s := inv.Summary()
	assert.Equal(t, "FCT-001", s.Number)
	assert.True(t, s.Romanian)
	assert.Equal(t, "380", s.TypeCode)
	assert.Equal(t, "RON", s.Currency)
	assert.Equal(t, 2, s.LineCount)
	assert.Equal(t, 1, s.BreakdownCount)
	assert.True(t, s.PayableAmount.Equal(decimal.NewFromInt(119)))
}

func TestParseError(t *testing.T) {
	err := &model.ParseError{
		Format:  model.FormatUBLInvoice,
		Field:   "IssueDate",
		Message: "invalid format",
	}

	require.Contains(t, err.Error(), "ubl-invoice")
	require.Contains(t, err.Error(), "IssueDate")
	require.Contains(t, err.Error(), "invalid format")
}

func TestParseError_WithCause(t *testing.T) {
	cause := assert.AnError
	err := model.NewParseError(model.FormatJSON, "body", "decode failed", cause)

	require.Contains(t, err.Error(), "json")
	require.ErrorIs(t, err, cause)
}

func TestContractError(t *testing.T) {
	err := model.NewContractError("validate", model.ErrNilDocument)

	require.ErrorIs(t, err, model.ErrNilDocument)
	require.Contains(t, err.Error(), "validate")

	var ce *model.ContractError
	require.True(t, errors.As(err, &ce))
}
