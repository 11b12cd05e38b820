package validation

import (
	"strings"

	"github.com/rezonia/efactura/internal/model"
)

func isRomanianAddress(a *model.Address) bool {
	return a != nil && a.CountryCode == model.CountryRomania
}

func isBucharestAddress(a *model.Address) bool {
	return isRomanianAddress(a) && a.CountrySubdivision == BucharestSubdivision
}

var addressRules = RuleSet[*model.Address]{
	{
		Code:    CodeRoCounty,
		Message: "Invalid Romanian county code. Must be valid ISO 3166-2:RO code.",
		When:    isRomanianAddress,
		Must: func(a *model.Address) bool {
			if strings.TrimSpace(a.CountrySubdivision) == "" {
				return false
			}
			return inSet(countySet, strings.ToUpper(a.CountrySubdivision))
		},
		Detail: func(a *model.Address) string {
			return "(got " + quoteOrEmpty(a.CountrySubdivision) + ")"
		},
	},
	{
		Code:    CodeRoBucharest,
		Message: "București addresses must specify 'Sector 1' through 'Sector 6' as city name.",
		When:    isBucharestAddress,
		Must: func(a *model.Address) bool {
			return bucharestSectorRe.MatchString(a.City)
		},
		Detail: func(a *model.Address) string {
			return "(got " + quoteOrEmpty(a.City) + ")"
		},
	},
	{
		// the sector rule already covers the city of a Bucharest address
		Code:    CodeRoCityRequired,
		Message: "City name is required for Romanian addresses.",
		When: func(a *model.Address) bool {
			return isRomanianAddress(a) && !isBucharestAddress(a)
		},
		Must: func(a *model.Address) bool {
			return a.City != ""
		},
	},
	{
		Code:    CodeRoCountryCode,
		Message: "Country code must be 'RO' for Romanian addresses.",
		When:    isRomanianAddress,
		Must: func(a *model.Address) bool {
			return a.CountryCode == model.CountryRomania
		},
	},
}

// ValidateAddress applies the Romanian postal address rules. Addresses
// outside Romania, and nil addresses, produce no violations.
func ValidateAddress(addr *model.Address, scope Scope) []Violation {
	if addr == nil {
		return nil
	}
	return addressRules.Evaluate(addr, scope)
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "empty"
	}
	return "\"" + s + "\""
}
