package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoCIUSCustomizationID is the profile URN every RO_CIUS invoice must declare
const RoCIUSCustomizationID = "urn:cen.eu:en16931:2017#compliant#urn:efactura.mfinante.ro:RO_CIUS:1.0.0.2021"

// CountryRomania is the ISO 3166-1 alpha-2 code for Romania
const CountryRomania = "RO"

// CurrencyRON is the Romanian leu
const CurrencyRON = "RON"

// Invoice is the decoded, in-memory form of an electronic invoice.
// Optional strings use "" as absent; optional numbers and dates are pointers.
type Invoice struct {
	CustomizationID  string     `json:"customization_id,omitempty"`
	Number           string     `json:"number"`
	IssueDate        time.Time  `json:"issue_date"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	TypeCode         string     `json:"type_code"`
	CurrencyCode     string     `json:"currency_code"`
	TaxCurrencyCode  string     `json:"tax_currency_code,omitempty"`
	TaxPointDateCode string     `json:"tax_point_date_code,omitempty"`
	Period           *Period    `json:"period,omitempty"`

	Seller Party  `json:"seller"`
	Buyer  Party  `json:"buyer"`
	Payee  *Party `json:"payee,omitempty"`

	Lines         []Line         `json:"lines"`
	TaxBreakdowns []TaxBreakdown `json:"tax_breakdowns,omitempty"`
	Totals        MonetaryTotals `json:"totals"`
}

// Period is an invoicing period; either end may be missing
type Period struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Bounded reports whether both ends of the period are known. Nil-safe.
func (p *Period) Bounded() bool {
	return p != nil && p.Start != nil && p.End != nil
}

// Ordered reports whether the period does not end before it starts.
// Periods with a missing end are considered ordered.
func (p *Period) Ordered() bool {
	if !p.Bounded() {
		return true
	}
	return !p.End.Before(*p.Start)
}

// Party is a seller, buyer or payee
type Party struct {
	Name                string   `json:"name,omitempty"`
	LegalRegistrationID string   `json:"legal_registration_id,omitempty"`
	VatIdentifier       string   `json:"vat_identifier,omitempty"`
	Address             *Address `json:"address,omitempty"`
}

// Address is the subset of a postal address the compliance rules look at
type Address struct {
	CountryCode        string `json:"country_code,omitempty"`
	CountrySubdivision string `json:"country_subdivision,omitempty"`
	City               string `json:"city,omitempty"`
}

// Line is a single invoice line
type Line struct {
	ID              string           `json:"id"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	UnitCode        string           `json:"unit_code,omitempty"`
	NetAmount       *decimal.Decimal `json:"net_amount,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	VatCategory     string           `json:"vat_category,omitempty"`
	VatRate         *decimal.Decimal `json:"vat_rate,omitempty"`
	ItemName        string           `json:"item_name,omitempty"`
	ItemDescription string           `json:"item_description,omitempty"`
	Note            string           `json:"note,omitempty"`
	Period          *Period          `json:"period,omitempty"`
}

// TaxBreakdown is one VAT subtotal (per category and rate)
type TaxBreakdown struct {
	Category        string           `json:"category,omitempty"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	TaxableAmount   *decimal.Decimal `json:"taxable_amount,omitempty"`
	TaxAmount       *decimal.Decimal `json:"tax_amount,omitempty"`
	ExemptionReason string           `json:"exemption_reason,omitempty"`
}

// MonetaryTotals holds the document level totals.
// VatTotal may be left nil, in which case it is recomputed from the breakdowns.
type MonetaryTotals struct {
	TaxExclusiveAmount *decimal.Decimal `json:"tax_exclusive_amount,omitempty"`
	TaxInclusiveAmount *decimal.Decimal `json:"tax_inclusive_amount,omitempty"`
	PayableAmount      *decimal.Decimal `json:"payable_amount,omitempty"`
	VatTotal           *decimal.Decimal `json:"vat_total,omitempty"`
}

// IsRomanian reports whether the party's postal address is in Romania
func (p *Party) IsRomanian() bool {
	return p != nil && p.Address != nil && p.Address.CountryCode == CountryRomania
}

// IsRomanian reports whether the invoice falls under the Romanian profile:
// it declares RO_CIUS, or the seller or buyer is located in Romania.
func (inv *Invoice) IsRomanian() bool {
	if inv == nil {
		return false
	}
	if inv.CustomizationID == RoCIUSCustomizationID {
		return true
	}
	return inv.Seller.IsRomanian() || inv.Buyer.IsRomanian()
}

// BreakdownTaxSum sums the tax amount of every breakdown; absent amounts count as zero
func (inv *Invoice) BreakdownTaxSum() decimal.Decimal {
	sum := decimal.Zero
	for i := range inv.TaxBreakdowns {
		if amt := inv.TaxBreakdowns[i].TaxAmount; amt != nil {
			sum = sum.Add(*amt)
		}
	}
	return sum
}

// VatTotal returns the supplied VAT total, or the breakdown sum when none was supplied
func (inv *Invoice) VatTotal() decimal.Decimal {
	if inv.Totals.VatTotal != nil {
		return *inv.Totals.VatTotal
	}
	return inv.BreakdownTaxSum()
}

// LineNetSum sums the net amount of every line; absent amounts count as zero
func (inv *Invoice) LineNetSum() decimal.Decimal {
	sum := decimal.Zero
	for i := range inv.Lines {
		if amt := inv.Lines[i].NetAmount; amt != nil {
			sum = sum.Add(*amt)
		}
	}
	return sum
}

// Summary is a compact description of an invoice, used for reporting
type Summary struct {
	Number         string          `json:"number"`
	Romanian       bool            `json:"romanian"`
	TypeCode       string          `json:"type_code"`
	Currency       string          `json:"currency"`
	PayableAmount  decimal.Decimal `json:"payable_amount"`
	LineCount      int             `json:"line_count"`
	BreakdownCount int             `json:"breakdown_count"`
}

// Summary builds the reporting summary of the invoice
func (inv *Invoice) Summary() Summary {
	s := Summary{
		Number:         inv.Number,
		Romanian:       inv.IsRomanian(),
		TypeCode:       inv.TypeCode,
		Currency:       inv.CurrencyCode,
		LineCount:      len(inv.Lines),
		BreakdownCount: len(inv.TaxBreakdowns),
	}
	if inv.Totals.PayableAmount != nil {
		s.PayableAmount = *inv.Totals.PayableAmount
	}
	return s
}
