package validation

import (
	"unicode/utf8"

	"github.com/rezonia/efactura/internal/model"
)

func unitPriceNonNegative(l *model.Line) bool {
	return l.UnitPrice.Sign() >= 0
}

func hasUnitPrice(l *model.Line) bool {
	return l.UnitPrice != nil
}

func maxRunes(field func(*model.Line) string, limit int) (when, must func(*model.Line) bool) {
	when = func(l *model.Line) bool { return field(l) != "" }
	must = func(l *model.Line) bool { return utf8.RuneCountInString(field(l)) <= limit }
	return when, must
}

var (
	noteWhen, noteMust = maxRunes(func(l *model.Line) string { return l.Note }, MaxLineNoteLength)
	nameWhen, nameMust = maxRunes(func(l *model.Line) string { return l.ItemName }, MaxItemNameLength)
	descWhen, descMust = maxRunes(func(l *model.Line) string { return l.ItemDescription }, MaxItemDescLength)
)

var lineRules = RuleSet[*model.Line]{
	{
		Code:    CodeLineID,
		Message: "Invoice line identifier is required.",
		Must:    func(l *model.Line) bool { return l.ID != "" },
	},
	{
		Code:    CodeLineQuantity,
		Message: "Invoice line quantity is required.",
		Must:    func(l *model.Line) bool { return l.Quantity != nil },
	},
	{
		Code:    CodeLineUnit,
		Message: "Invoice line unit of measure is required.",
		Must:    func(l *model.Line) bool { return l.UnitCode != "" },
	},
	{
		Code:    CodeLineNetAmount,
		Message: "Invoice line net amount is required.",
		Must:    func(l *model.Line) bool { return l.NetAmount != nil },
	},
	{
		Code:    CodeLineUnitPrice,
		Message: "Invoice line net unit price is required.",
		Must:    hasUnitPrice,
	},
	{
		Code:    CodeLineItemName,
		Message: "Invoice line item name is required.",
		Must:    func(l *model.Line) bool { return l.ItemName != "" },
	},
	{
		Code:    CodeLineNetPriceSign,
		Message: "Invoice line net unit price must not be negative.",
		When:    hasUnitPrice,
		Must:    unitPriceNonNegative,
	},
	{
		// the model has no separate gross price; BR-28 checks the same price
		Code:    CodeLineGrossPrice,
		Message: "Invoice line gross unit price must not be negative.",
		When:    hasUnitPrice,
		Must:    unitPriceNonNegative,
	},
	{
		Code:    CodeLineVatCategory,
		Message: "Invoice line VAT category code is required.",
		Must:    func(l *model.Line) bool { return l.VatCategory != "" },
	},
	{
		Code:    CodeLinePeriod,
		Message: "Invoice line period end date must be greater than or equal to start date.",
		When:    func(l *model.Line) bool { return l.Period.Bounded() },
		Must:    func(l *model.Line) bool { return l.Period.Ordered() },
	},
	{
		Code:    CodeRoLineNoteLength,
		Message: "Invoice line note cannot exceed 300 characters.",
		When:    noteWhen,
		Must:    noteMust,
	},
	{
		Code:    CodeRoItemNameLength,
		Message: "Item name cannot exceed 200 characters.",
		When:    nameWhen,
		Must:    nameMust,
	},
	{
		Code:    CodeRoItemDescLength,
		Message: "Item description cannot exceed 200 characters.",
		When:    descWhen,
		Must:    descMust,
	},
}

// ValidateLine applies the line rules to one invoice line. number is the
// 1-based position of the line and becomes the scope of every violation.
func ValidateLine(line *model.Line, number int) []Violation {
	if line == nil {
		line = &model.Line{}
	}
	return lineRules.Evaluate(line, LineScope(number))
}
