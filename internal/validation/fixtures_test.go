package validation_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/efactura/internal/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func validLine(id string) model.Line {
	return model.Line{
		ID:          id,
		Quantity:    dec("1"),
		UnitCode:    "H87",
		NetAmount:   dec("100.00"),
		UnitPrice:   dec("100.00"),
		VatCategory: "S",
		VatRate:     dec("19"),
		ItemName:    "Servicii consultanta",
	}
}

// minimalInvoice is the smallest invoice that passes every rule
func minimalInvoice() *model.Invoice {
	return &model.Invoice{
		CustomizationID: model.RoCIUSCustomizationID,
		Number:          "FCT-2024-001",
		IssueDate:       *date("2024-03-15"),
		TypeCode:        "380",
		CurrencyCode:    "RON",
		Seller: model.Party{
			Name:                "Furnizor SRL",
			LegalRegistrationID: "RO12345678",
			Address:             &model.Address{CountryCode: "RO", CountrySubdivision: "CJ", City: "Cluj-Napoca"},
		},
		Buyer: model.Party{
			Name:                "Client SA",
			LegalRegistrationID: "RO87654321",
			Address:             &model.Address{CountryCode: "RO", CountrySubdivision: "B", City: "Sector 3"},
		},
		Lines: []model.Line{validLine("1")},
		TaxBreakdowns: []model.TaxBreakdown{
			{Category: "S", Rate: dec("19"), TaxableAmount: dec("100.00"), TaxAmount: dec("19.00")},
		},
		Totals: model.MonetaryTotals{
			TaxExclusiveAmount: dec("100.00"),
			TaxInclusiveAmount: dec("119.00"),
			PayableAmount:      dec("119.00"),
			VatTotal:           dec("19.00"),
		},
	}
}
