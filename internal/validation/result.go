package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ScopeKind names the sub-entity a violation is attached to
type ScopeKind int

const (
	KindDocument ScopeKind = iota
	KindSeller
	KindBuyer
	KindPayee
	KindLine
	KindTotals
)

var kindNames = map[ScopeKind]string{
	KindDocument: "document",
	KindSeller:   "seller",
	KindBuyer:    "buyer",
	KindPayee:    "payee",
	KindLine:     "line",
	KindTotals:   "totals",
}

func (k ScopeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Scope locates a violation. Line is the 1-based line number and is only
// meaningful when Kind is KindLine.
type Scope struct {
	Kind ScopeKind
	Line int
}

// Fixed scopes
var (
	DocumentScope = Scope{Kind: KindDocument}
	SellerScope   = Scope{Kind: KindSeller}
	BuyerScope    = Scope{Kind: KindBuyer}
	PayeeScope    = Scope{Kind: KindPayee}
	TotalsScope   = Scope{Kind: KindTotals}
)

// LineScope returns the scope of the line with the given 1-based number
func LineScope(number int) Scope {
	return Scope{Kind: KindLine, Line: number}
}

func (s Scope) String() string {
	if s.Kind == KindLine {
		return "line:" + strconv.Itoa(s.Line)
	}
	return s.Kind.String()
}

// MarshalText renders the scope as "document", "seller", "line:3", ...
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the form produced by MarshalText
func (s *Scope) UnmarshalText(text []byte) error {
	str := string(text)
	if rest, ok := strings.CutPrefix(str, "line:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("invalid line scope %q: %w", str, err)
		}
		*s = LineScope(n)
		return nil
	}
	for kind, name := range kindNames {
		if name == str && kind != KindLine {
			*s = Scope{Kind: kind}
			return nil
		}
	}
	return fmt.Errorf("unknown scope %q", str)
}

// Violation is one failed business rule
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Scope   Scope  `json:"scope"`
}

func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Code, v.Scope, v.Message)
}

// Result is the outcome of validating one document.
// Valid is true iff Violations is empty.
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

func newResult(violations []Violation) *Result {
	if violations == nil {
		violations = make([]Violation, 0)
	}
	return &Result{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// Codes returns the violated rule codes in result order, duplicates included
func (r *Result) Codes() []string {
	codes := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		codes = append(codes, v.Code)
	}
	return codes
}

// Count returns how many violations carry the given code
func (r *Result) Count(code string) int {
	n := 0
	for _, v := range r.Violations {
		if v.Code == code {
			n++
		}
	}
	return n
}

// Has reports whether any violation carries the given code
func (r *Result) Has(code string) bool {
	return r.Count(code) > 0
}

// InScope returns the violations attached to the given scope
func (r *Result) InScope(scope Scope) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Scope == scope {
			out = append(out, v)
		}
	}
	return out
}
