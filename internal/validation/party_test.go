package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/validation"
)

func codesOf(violations []validation.Violation) []string {
	var codes []string
	for _, v := range violations {
		codes = append(codes, v.Code)
	}
	return codes
}

func roAddress() *model.Address {
	return &model.Address{CountryCode: "RO", CountrySubdivision: "CJ", City: "Cluj-Napoca"}
}

func TestValidateSeller(t *testing.T) {
	tests := []struct {
		name  string
		party *model.Party
		want  []string
	}{
		{
			name:  "romanian seller with id",
			party: &model.Party{Name: "Furnizor SRL", LegalRegistrationID: "RO123", Address: roAddress()},
		},
		{
			name:  "romanian seller without id",
			party: &model.Party{Name: "Furnizor SRL", Address: roAddress()},
			want:  []string{validation.CodeRoSellerID},
		},
		{
			name:  "foreign seller without id",
			party: &model.Party{Name: "Lieferant GmbH", Address: &model.Address{CountryCode: "DE"}},
		},
		{
			name:  "seller without address",
			party: &model.Party{Name: "Furnizor SRL"},
			want:  []string{validation.CodeSellerAddress},
		},
		{
			name: "romanian seller with bad address",
			party: &model.Party{
				LegalRegistrationID: "RO123",
				Address:             &model.Address{CountryCode: "RO", CountrySubdivision: "ZZ"},
			},
			want: []string{validation.CodeSellerName, validation.CodeRoCounty, validation.CodeRoCityRequired},
		},
		{
			name: "nil seller",
			want: []string{validation.CodeSellerName, validation.CodeSellerAddress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := validation.ValidateSeller(tt.party)
			assert.Equal(t, tt.want, codesOf(violations))
			for _, v := range violations {
				assert.Equal(t, validation.SellerScope, v.Scope)
			}
		})
	}
}

func TestValidateBuyer(t *testing.T) {
	tests := []struct {
		name  string
		party *model.Party
		want  []string
	}{
		{
			name:  "legal id only",
			party: &model.Party{Name: "Client SA", LegalRegistrationID: "RO987", Address: roAddress()},
		},
		{
			name:  "vat id only",
			party: &model.Party{Name: "Client SA", VatIdentifier: "RO987", Address: roAddress()},
		},
		{
			name:  "whitespace ids count as absent",
			party: &model.Party{Name: "Client SA", LegalRegistrationID: "  ", VatIdentifier: "\t", Address: roAddress()},
			want:  []string{validation.CodeRoBuyerID},
		},
		{
			name:  "foreign buyer without ids",
			party: &model.Party{Name: "Kunde AG", Address: &model.Address{CountryCode: "AT"}},
		},
		{
			name:  "missing name and address",
			party: &model.Party{LegalRegistrationID: "RO987"},
			want:  []string{validation.CodeBuyerName, validation.CodeBuyerAddress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := validation.ValidateBuyer(tt.party)
			assert.Equal(t, tt.want, codesOf(violations))
			for _, v := range violations {
				assert.Equal(t, validation.BuyerScope, v.Scope)
			}
		})
	}
}

func TestValidatePayee(t *testing.T) {
	named := &model.Party{Name: "Executor Judecatoresc"}

	assert.Empty(t, validation.ValidatePayee(named, false))
	assert.Equal(t, []string{validation.CodePayeeName}, codesOf(validation.ValidatePayee(&model.Party{}, false)))

	forced := validation.ValidatePayee(named, true)
	assert.Equal(t, []string{validation.CodeRoForcedPayee}, codesOf(forced))
	assert.Contains(t, forced[0].Message, "legal registration")

	assert.Empty(t, validation.ValidatePayee(&model.Party{Name: "Executor", LegalRegistrationID: "123"}, true))
}
