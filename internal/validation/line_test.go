package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/validation"
)

func TestValidateLine(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Line)
		want   []string
	}{
		{
			name:   "valid",
			mutate: func(*model.Line) {},
		},
		{
			name:   "negative unit price fails under both codes",
			mutate: func(l *model.Line) { l.UnitPrice = dec("-1.00") },
			want:   []string{validation.CodeLineNetPriceSign, validation.CodeLineGrossPrice},
		},
		{
			name:   "zero unit price",
			mutate: func(l *model.Line) { l.UnitPrice = dec("0") },
		},
		{
			name:   "missing unit price",
			mutate: func(l *model.Line) { l.UnitPrice = nil },
			want:   []string{validation.CodeLineUnitPrice},
		},
		{
			name: "period ends before it starts",
			mutate: func(l *model.Line) {
				l.Period = &model.Period{Start: date("2024-02-10"), End: date("2024-02-01")}
			},
			want: []string{validation.CodeLinePeriod},
		},
		{
			name: "single day period",
			mutate: func(l *model.Line) {
				l.Period = &model.Period{Start: date("2024-02-10"), End: date("2024-02-10")}
			},
		},
		{
			name:   "note at limit",
			mutate: func(l *model.Line) { l.Note = strings.Repeat("ă", validation.MaxLineNoteLength) },
		},
		{
			name:   "note over limit",
			mutate: func(l *model.Line) { l.Note = strings.Repeat("ă", validation.MaxLineNoteLength+1) },
			want:   []string{validation.CodeRoLineNoteLength},
		},
		{
			name:   "item name over limit",
			mutate: func(l *model.Line) { l.ItemName = strings.Repeat("x", validation.MaxItemNameLength+1) },
			want:   []string{validation.CodeRoItemNameLength},
		},
		{
			name:   "item description counted in characters",
			mutate: func(l *model.Line) { l.ItemDescription = strings.Repeat("ș", validation.MaxItemDescLength) },
		},
		{
			name:   "item description over limit",
			mutate: func(l *model.Line) { l.ItemDescription = strings.Repeat("d", validation.MaxItemDescLength+1) },
			want:   []string{validation.CodeRoItemDescLength},
		},
		{
			name:   "empty line",
			mutate: func(l *model.Line) { *l = model.Line{} },
			want: []string{
				validation.CodeLineID,
				validation.CodeLineQuantity,
				validation.CodeLineUnit,
				validation.CodeLineNetAmount,
				validation.CodeLineUnitPrice,
				validation.CodeLineItemName,
				validation.CodeLineVatCategory,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := validLine("1")
			tt.mutate(&line)
			assert.Equal(t, tt.want, codesOf(validation.ValidateLine(&line, 7)))
		})
	}
}

func TestValidateLine_ScopeIsLineNumber(t *testing.T) {
	violations := validation.ValidateLine(&model.Line{}, 4)

	for _, v := range violations {
		assert.Equal(t, validation.LineScope(4), v.Scope)
		assert.Equal(t, "line:4", v.Scope.String())
	}
}

func TestValidate_LineScopesFollowPosition(t *testing.T) {
	inv := minimalInvoice()
	second := validLine("2")
	second.UnitCode = ""
	inv.Lines = append(inv.Lines, second)

	result, err := validation.Validate(inv)
	if assert.NoError(t, err) {
		violations := result.InScope(validation.LineScope(2))
		assert.Equal(t, []string{validation.CodeLineUnit}, codesOf(violations))
	}
}
