package validation

import "regexp"

// Limits imposed by the Romanian profile
const (
	MaxLines             = 999
	MaxLineNoteLength    = 300
	MaxItemNameLength    = 200
	MaxItemDescLength    = 200
	MaxMonetaryDecimals  = 2
	BucharestSubdivision = "B"
)

// RomanianCountyCodes are the ISO 3166-2:RO subdivision codes: 41 counties plus Bucharest
var RomanianCountyCodes = []string{
	"AB", "AR", "AG", "B", "BC", "BH", "BN", "BT", "BV", "BR", "BZ",
	"CS", "CL", "CJ", "CT", "CV", "DB", "DJ", "GL", "GR", "GJ",
	"HR", "HD", "IL", "IS", "IF", "MM", "MH", "MS", "NT", "OT",
	"PH", "SM", "SJ", "SB", "SV", "TR", "TM", "TL", "VS", "VL", "VN",
}

// RomanianInvoiceTypeCodes are the type codes accepted by RO_CIUS
var RomanianInvoiceTypeCodes = []string{"380", "389", "384", "381", "751"}

// InvoiceTypeCodes is the UNTDID 1001 subset usable for invoices and credit notes under EN16931
var InvoiceTypeCodes = []string{
	"71", "80", "81", "82", "84", "102", "130", "202", "203", "204", "211",
	"218", "219", "261", "262", "295", "296", "308", "325", "326", "331",
	"380", "381", "382", "383", "384", "385", "386", "387", "388", "389",
	"390", "393", "394", "395", "396", "420", "456", "457", "458", "527",
	"532", "553", "575", "623", "633", "751", "780", "817", "870", "875",
	"876", "877", "935",
}

// VatPointDateCodes are the UNTDID 2005 codes RO_CIUS allows for the VAT point date
var VatPointDateCodes = []string{"3", "35", "432"}

var (
	bucharestSectorRe = regexp.MustCompile(`(?i)^Sector [1-6]$`)
	digitRe           = regexp.MustCompile(`\d`)
)

var (
	countySet          = toSet(RomanianCountyCodes)
	romanianTypeSet    = toSet(RomanianInvoiceTypeCodes)
	invoiceTypeCodeSet = toSet(InvoiceTypeCodes)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
