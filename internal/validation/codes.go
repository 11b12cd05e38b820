package validation

// Stable rule codes. External consumers compare these verbatim against the
// tax authority's own validator, so they must never be renamed.
const (
	CodeInvoiceNumber    = "BR-1"
	CodeIssueDate        = "BR-2"
	CodeTypeCode         = "BR-3"
	CodeTypeCodeList     = "BR-4"
	CodeCurrency         = "BR-5"
	CodeSellerName       = "BR-6"
	CodeBuyerName        = "BR-7"
	CodeSellerAddress    = "BR-8"
	CodeBuyerAddress     = "BR-10"
	CodeTaxExclusive     = "BR-12"
	CodeTaxInclusive     = "BR-14"
	CodePayable          = "BR-15"
	CodeLinesRequired    = "BR-16"
	CodePayeeName        = "BR-17"
	CodeLineID           = "BR-21"
	CodeLineQuantity     = "BR-22"
	CodeLineUnit         = "BR-23"
	CodeLineNetAmount    = "BR-24"
	CodeLineUnitPrice    = "BR-25"
	CodeLineItemName     = "BR-26"
	CodeLineNetPriceSign = "BR-27"
	CodeLineGrossPrice   = "BR-28"
	CodeDocumentPeriod   = "BR-29"
	CodeLinePeriod       = "BR-30"

	CodeLineVatCategory = "BR-CO-4"
	CodeLineNetSum      = "BR-CO-10"
	CodeInclusiveTotal  = "BR-CO-11"
	CodeBreakdownAmount = "BR-CO-12"
	CodeVatTotalSum     = "BR-CO-13"

	CodeRoCIUS           = "BR-RO-CIUS"
	CodeRoNumberDigit    = "BR-RO-010"
	CodeRoTypeCode       = "BR-RO-020"
	CodeRoVatCurrency    = "BR-RO-030"
	CodeRoVatPointDate   = "BR-RO-040"
	CodeRoBuyerID        = "BR-RO-120"
	CodeRoForcedPayee    = "BR-RO-130"
	CodeRoSellerID       = "BR-RO-SELLER-ID"
	CodeRoCounty         = "BR-RO-COUNTY"
	CodeRoBucharest      = "BR-RO-BUCHAREST"
	CodeRoCityRequired   = "BR-RO-CITY-REQUIRED"
	CodeRoCountryCode    = "BR-RO-COUNTRY-CODE"
	CodeRoMaxLines       = "BR-RO-A999"
	CodeRoTwoDecimals    = "BR-RO-Z2"
	CodeRoLineNoteLength = "RO-LINE-NOTE-LENGTH"
	CodeRoItemNameLength = "RO-ITEM-NAME-LENGTH"
	CodeRoItemDescLength = "RO-ITEM-DESC-LENGTH"
)
