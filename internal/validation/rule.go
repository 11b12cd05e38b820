package validation

// Rule is a single coded check over a value of type T. When is the
// applicability guard (nil means the rule always applies); Must is the
// condition a compliant value satisfies. Detail, when set, appends the
// observed values to the message of a failed check.
type Rule[T any] struct {
	Code    string
	Message string
	When    func(T) bool
	Must    func(T) bool
	Detail  func(T) string
}

// Applies reports whether the rule is evaluated for v
func (r Rule[T]) Applies(v T) bool {
	return r.When == nil || r.When(v)
}

// Check evaluates the rule and returns the violation it produces, if any
func (r Rule[T]) Check(v T, scope Scope) (Violation, bool) {
	if !r.Applies(v) || r.Must(v) {
		return Violation{}, false
	}
	msg := r.Message
	if r.Detail != nil {
		if detail := r.Detail(v); detail != "" {
			msg += " " + detail
		}
	}
	return Violation{Code: r.Code, Message: msg, Scope: scope}, true
}

// RuleSet is an ordered, flat list of rules over the same subject
type RuleSet[T any] []Rule[T]

// Evaluate runs every rule against v; no failure suppresses a later rule
func (rs RuleSet[T]) Evaluate(v T, scope Scope) []Violation {
	var out []Violation
	for _, r := range rs {
		if violation, failed := r.Check(v, scope); failed {
			out = append(out, violation)
		}
	}
	return out
}

// Describe lists the rules for the catalog
func (rs RuleSet[T]) Describe(kind ScopeKind) []RuleInfo {
	out := make([]RuleInfo, 0, len(rs))
	for _, r := range rs {
		out = append(out, RuleInfo{Code: r.Code, Scope: kind.String(), Message: r.Message})
	}
	return out
}
