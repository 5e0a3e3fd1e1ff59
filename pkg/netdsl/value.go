package netdsl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the pure-numeric head of a literal, before any
// engineering suffix or unit letters.
var numericPrefix = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?`)

// multipliers maps engineering suffixes to scale factors. "meg" is matched
// before "m" so that 1meg is a million, not a milli.
var multipliers = map[string]float64{
	"t": 1e12,
	"g": 1e9,
	"k": 1e3,
	"m": 1e-3,
	"u": 1e-6,
	"n": 1e-9,
	"p": 1e-12,
	"f": 1e-15,
}

// ParseNumber parses a numeric literal with an optional engineering suffix
// and trailing unit letters: 10k, 4.7uF, 1meg, 2.2e3, 100. Unit letters
// without a recognized suffix are ignored (50Hz parses as 50).
func ParseNumber(s string) (float64, error) {
	head := numericPrefix.FindString(s)
	if head == "" {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	base, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}

	suffix := strings.ToLower(s[len(head):])
	switch {
	case suffix == "":
		return base, nil
	case strings.HasPrefix(suffix, "meg"):
		return base * 1e6, nil
	default:
		if m, ok := multipliers[suffix[:1]]; ok {
			return base * m, nil
		}
		return base, nil
	}
}

// Interpret converts a parsed parameter value into its Go representation:
// string, bool, float64, or the bare identifier text.
func (v *Value) Interpret() (any, error) {
	switch {
	case v.Str != nil:
		return *v.Str, nil
	case v.Bool != nil:
		return bool(*v.Bool), nil
	case v.Number != nil:
		return ParseNumber(*v.Number)
	case v.Ident != nil:
		return *v.Ident, nil
	default:
		return nil, fmt.Errorf("empty value")
	}
}
