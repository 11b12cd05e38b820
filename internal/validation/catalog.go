package validation

import "github.com/rezonia/efactura/internal/model"

// RuleInfo describes one rule of the catalog
type RuleInfo struct {
	Code    string `json:"code" yaml:"code"`
	Scope   string `json:"scope" yaml:"scope"`
	Message string `json:"message" yaml:"message"`
}

// Catalog enumerates every rule in evaluation order. Address rules are
// listed under the "address" scope; at run time they report under the
// seller or buyer scope. A code may appear more than once.
func Catalog() []RuleInfo {
	var out []RuleInfo
	out = append(out, documentRules.Describe(KindDocument)...)
	out = append(out, sellerRules.Describe(KindSeller)...)
	out = append(out, buyerRules.Describe(KindBuyer)...)
	for _, info := range addressRules.Describe(KindDocument) {
		info.Scope = "address"
		out = append(out, info)
	}
	out = append(out, payeeRules.Describe(KindPayee)...)
	out = append(out, lineRules.Describe(KindLine)...)
	out = append(out, totalsRules.Describe(KindTotals)...)
	out = append(out, RuleSet[*model.TaxBreakdown]{breakdownRule}.Describe(KindTotals)...)
	out = append(out, vatRules.Describe(KindTotals)...)
	return out
}

// Codes returns the distinct rule codes of the catalog, in catalog order
func Codes() []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, info := range Catalog() {
		if _, ok := seen[info.Code]; ok {
			continue
		}
		seen[info.Code] = struct{}{}
		codes = append(codes, info.Code)
	}
	return codes
}
