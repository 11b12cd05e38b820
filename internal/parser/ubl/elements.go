package ubl

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	money "github.com/rezonia/efactura/internal/decimal"
)

// child returns the first child element with the given local name. etree
// keeps the namespace prefix in Space, so Tag is already the local name.
func child(elem *etree.Element, name string) *etree.Element {
	if elem == nil {
		return nil
	}
	for _, c := range elem.ChildElements() {
		if c.Tag == name {
			return c
		}
	}
	return nil
}

// children returns all child elements with the given local name
func children(elem *etree.Element, name string) []*etree.Element {
	if elem == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range elem.ChildElements() {
		if c.Tag == name {
			out = append(out, c)
		}
	}
	return out
}

// find walks a path of local names from elem
func find(elem *etree.Element, path ...string) *etree.Element {
	for _, name := range path {
		elem = child(elem, name)
		if elem == nil {
			return nil
		}
	}
	return elem
}

// text returns the trimmed text at path, or "" when the element is missing
func text(elem *etree.Element, path ...string) string {
	e := find(elem, path...)
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}

// amount parses the decimal at path; missing or malformed values are nil
func amount(elem *etree.Element, path ...string) *decimal.Decimal {
	return money.Ptr(text(elem, path...))
}

// date parses the UBL date at path; missing or malformed values are nil
func date(elem *etree.Element, path ...string) *time.Time {
	s := text(elem, path...)
	if s == "" {
		return nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

func parseDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"2006-01-02Z07:00",
		time.RFC3339,
	}

	var err error
	for _, format := range formats {
		var t time.Time
		if t, err = time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
