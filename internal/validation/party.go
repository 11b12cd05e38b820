package validation

import (
	"strings"

	"github.com/rezonia/efactura/internal/model"
)

func hasName(p *model.Party) bool {
	return p.Name != ""
}

func hasPostalAddress(p *model.Party) bool {
	return p.Address != nil
}

func isRomanianParty(p *model.Party) bool {
	return p.IsRomanian()
}

func hasLegalRegistration(p *model.Party) bool {
	return p.LegalRegistrationID != ""
}

var sellerRules = RuleSet[*model.Party]{
	{
		Code:    CodeSellerName,
		Message: "Seller name is required.",
		Must:    hasName,
	},
	{
		Code:    CodeSellerAddress,
		Message: "Seller postal address is required.",
		Must:    hasPostalAddress,
	},
	{
		Code:    CodeRoSellerID,
		Message: "Romanian seller should have legal registration identifier (CUI/CIF).",
		When:    isRomanianParty,
		Must:    hasLegalRegistration,
	},
}

var buyerRules = RuleSet[*model.Party]{
	{
		Code:    CodeRoBuyerID,
		Message: "Romanian buyer must have either Legal Registration ID (CUI/CIF) or VAT identifier.",
		When:    isRomanianParty,
		Must: func(p *model.Party) bool {
			return strings.TrimSpace(p.LegalRegistrationID) != "" ||
				strings.TrimSpace(p.VatIdentifier) != ""
		},
	},
	{
		Code:    CodeBuyerName,
		Message: "Buyer name is required.",
		Must:    hasName,
	},
	{
		Code:    CodeBuyerAddress,
		Message: "Buyer postal address is required.",
		Must:    hasPostalAddress,
	},
}

// payee is the subject of the payee rules: the party plus whether the
// invoice is issued under forced execution.
type payee struct {
	party           *model.Party
	forcedExecution bool
}

func underForcedExecution(p payee) bool { return p.forcedExecution }

var payeeRules = RuleSet[payee]{
	{
		Code:    CodeRoForcedPayee,
		Message: "In forced execution, Payee name is required and must be the execution authority name.",
		When:    underForcedExecution,
		Must:    func(p payee) bool { return p.party.Name != "" },
	},
	{
		Code:    CodeRoForcedPayee,
		Message: "In forced execution, Payee legal registration identifier is required.",
		When:    underForcedExecution,
		Must:    func(p payee) bool { return p.party.LegalRegistrationID != "" },
	},
	{
		Code:    CodePayeeName,
		Message: "Payee name is required when payee is specified.",
		Must:    func(p payee) bool { return p.party.Name != "" },
	},
}

// ValidateSeller applies the seller rules, including the Romanian address
// rules when the seller is located in Romania.
func ValidateSeller(party *model.Party) []Violation {
	return validateParty(party, sellerRules, SellerScope)
}

// ValidateBuyer applies the buyer rules, including the Romanian address
// rules when the buyer is located in Romania.
func ValidateBuyer(party *model.Party) []Violation {
	return validateParty(party, buyerRules, BuyerScope)
}

// ValidatePayee applies the payee rules. It is only meaningful for a payee
// that is actually present on the invoice.
func ValidatePayee(party *model.Party, forcedExecution bool) []Violation {
	if party == nil {
		party = &model.Party{}
	}
	return payeeRules.Evaluate(payee{party: party, forcedExecution: forcedExecution}, PayeeScope)
}

func validateParty(party *model.Party, rules RuleSet[*model.Party], scope Scope) []Violation {
	if party == nil {
		party = &model.Party{}
	}
	out := rules.Evaluate(party, scope)
	if party.IsRomanian() {
		out = append(out, ValidateAddress(party.Address, scope)...)
	}
	return out
}
