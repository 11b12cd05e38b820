package ubl

import (
	"context"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/rezonia/efactura/internal/model"
)

// documentKind captures the element names that differ between UBL Invoice
// and CreditNote documents.
type documentKind struct {
	format   model.Format
	root     string
	typeCode string
	line     string
	quantity string
}

var (
	invoiceKind = documentKind{
		format:   model.FormatUBLInvoice,
		root:     "Invoice",
		typeCode: "InvoiceTypeCode",
		line:     "InvoiceLine",
		quantity: "InvoicedQuantity",
	}
	creditNoteKind = documentKind{
		format:   model.FormatUBLCreditNote,
		root:     "CreditNote",
		typeCode: "CreditNoteTypeCode",
		line:     "CreditNoteLine",
		quantity: "CreditedQuantity",
	}
)

func (k documentKind) parse(ctx context.Context, r io.Reader) (*model.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, model.NewParseError(k.format, "content", "failed to read content", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, model.NewParseError(k.format, "xml", "failed to parse XML", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, model.NewParseError(k.format, "root", "empty XML document", nil)
	}
	if root.Tag != k.root {
		return nil, model.NewParseError(k.format, "root", "unexpected root element <"+root.Tag+">", nil)
	}

	return k.convert(root), nil
}

func (k documentKind) convert(root *etree.Element) *model.Invoice {
	inv := &model.Invoice{
		CustomizationID:  text(root, "CustomizationID"),
		Number:           text(root, "ID"),
		DueDate:          date(root, "DueDate"),
		TypeCode:         text(root, k.typeCode),
		CurrencyCode:     text(root, "DocumentCurrencyCode"),
		TaxCurrencyCode:  text(root, "TaxCurrencyCode"),
		TaxPointDateCode: text(root, "InvoicePeriod", "DescriptionCode"),
		Period:           convertPeriod(child(root, "InvoicePeriod")),
		Seller:           convertParty(find(root, "AccountingSupplierParty", "Party")),
		Buyer:            convertParty(find(root, "AccountingCustomerParty", "Party")),
	}

	if issued := date(root, "IssueDate"); issued != nil {
		inv.IssueDate = *issued
	}

	if payee := child(root, "PayeeParty"); payee != nil {
		p := convertParty(payee)
		inv.Payee = &p
	}

	for _, line := range children(root, k.line) {
		inv.Lines = append(inv.Lines, k.convertLine(line))
	}

	if taxTotal := documentTaxTotal(root, inv.CurrencyCode); taxTotal != nil {
		inv.Totals.VatTotal = amount(taxTotal, "TaxAmount")
		for _, sub := range children(taxTotal, "TaxSubtotal") {
			inv.TaxBreakdowns = append(inv.TaxBreakdowns, convertSubtotal(sub))
		}
	}

	totals := child(root, "LegalMonetaryTotal")
	inv.Totals.TaxExclusiveAmount = amount(totals, "TaxExclusiveAmount")
	inv.Totals.TaxInclusiveAmount = amount(totals, "TaxInclusiveAmount")
	inv.Totals.PayableAmount = amount(totals, "PayableAmount")

	return inv
}

// documentTaxTotal picks the TaxTotal expressed in the document currency.
// A document in foreign currency carries a second TaxTotal in RON.
func documentTaxTotal(root *etree.Element, currency string) *etree.Element {
	totals := children(root, "TaxTotal")
	if len(totals) == 0 {
		return nil
	}
	for _, t := range totals {
		amt := child(t, "TaxAmount")
		if amt != nil && amt.SelectAttrValue("currencyID", currency) == currency {
			return t
		}
	}
	return totals[0]
}

func convertPeriod(elem *etree.Element) *model.Period {
	if elem == nil {
		return nil
	}
	start, end := date(elem, "StartDate"), date(elem, "EndDate")
	if start == nil && end == nil {
		return nil
	}
	return &model.Period{Start: start, End: end}
}

func convertParty(party *etree.Element) model.Party {
	if party == nil {
		return model.Party{}
	}

	result := model.Party{
		Name:                text(party, "PartyName", "Name"),
		LegalRegistrationID: text(party, "PartyLegalEntity", "CompanyID"),
		VatIdentifier:       vatIdentifier(party),
		Address:             convertAddress(child(party, "PostalAddress")),
	}
	if result.Name == "" {
		result.Name = text(party, "PartyLegalEntity", "RegistrationName")
	}
	if result.LegalRegistrationID == "" {
		result.LegalRegistrationID = text(party, "PartyIdentification", "ID")
	}
	return result
}

// vatIdentifier returns the CompanyID of the VAT tax scheme, falling back to
// the first declared tax scheme.
func vatIdentifier(party *etree.Element) string {
	schemes := children(party, "PartyTaxScheme")
	for _, s := range schemes {
		if strings.EqualFold(text(s, "TaxScheme", "ID"), "VAT") {
			return text(s, "CompanyID")
		}
	}
	if len(schemes) > 0 {
		return text(schemes[0], "CompanyID")
	}
	return ""
}

func convertAddress(addr *etree.Element) *model.Address {
	if addr == nil {
		return nil
	}
	country := text(addr, "Country", "IdentificationCode")
	subdivision := text(addr, "CountrySubentity")
	if country == model.CountryRomania {
		// ISO 3166-2 form "RO-CJ" carries the county as "CJ"
		subdivision = strings.TrimPrefix(subdivision, country+"-")
	}
	return &model.Address{
		CountryCode:        country,
		CountrySubdivision: subdivision,
		City:               text(addr, "CityName"),
	}
}

func (k documentKind) convertLine(line *etree.Element) model.Line {
	result := model.Line{
		ID:              text(line, "ID"),
		Quantity:        amount(line, k.quantity),
		NetAmount:       amount(line, "LineExtensionAmount"),
		UnitPrice:       amount(line, "Price", "PriceAmount"),
		VatCategory:     text(line, "Item", "ClassifiedTaxCategory", "ID"),
		VatRate:         amount(line, "Item", "ClassifiedTaxCategory", "Percent"),
		ItemName:        text(line, "Item", "Name"),
		ItemDescription: text(line, "Item", "Description"),
		Note:            text(line, "Note"),
		Period:          convertPeriod(child(line, "InvoicePeriod")),
	}
	if qty := child(line, k.quantity); qty != nil {
		result.UnitCode = strings.TrimSpace(qty.SelectAttrValue("unitCode", ""))
	}
	return result
}

func convertSubtotal(sub *etree.Element) model.TaxBreakdown {
	return model.TaxBreakdown{
		Category:        text(sub, "TaxCategory", "ID"),
		Rate:            amount(sub, "TaxCategory", "Percent"),
		TaxableAmount:   amount(sub, "TaxableAmount"),
		TaxAmount:       amount(sub, "TaxAmount"),
		ExemptionReason: text(sub, "TaxCategory", "TaxExemptionReason"),
	}
}
