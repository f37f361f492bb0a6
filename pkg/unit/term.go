package unit

import (
	"strconv"
	"strings"

	"github.com/unitkit/unitkit-go/pkg/registry"
)

// Term is one parsed token of a compound unit string: an optional
// multiplier prefix, a fundamental or derived symbol, and a signed
// (possibly fractional) power.
type Term struct {
	// Prefix is the multiplier prefix symbol, or "" if none.
	Prefix string

	// Base is the fundamental or derived unit symbol.
	Base string

	// Power is the exponent. Defaults to 1 when the token has no
	// "^power" suffix.
	Power float64
}

// ParseTerm parses a single whitespace-free token such as "kPa^-2".
//
// The suffix after "^" is the power. The remainder is matched against
// the table: an exact fundamental or derived symbol wins and carries no
// prefix. Otherwise prefixes are tried in the registry's deterministic
// order (longest first, ties lexicographic) and the first split whose
// remainder is a known symbol is accepted. A token with no valid split
// fails with an UnknownUnitError.
func ParseTerm(reg *registry.Registry, token string) (Term, error) {
	name := token
	power := 1.0
	if idx := strings.Index(token, "^"); idx >= 0 {
		name = token[:idx]
		p, err := strconv.ParseFloat(token[idx+1:], 64)
		if err != nil {
			return Term{}, &UnknownUnitError{Symbol: token}
		}
		power = p
	}
	if name == "" {
		return Term{}, &UnknownUnitError{Symbol: token}
	}

	// Exact symbol match takes precedence over any prefix split, so "m"
	// is the meter rather than a bare milli prefix.
	if reg.Known(name) {
		return Term{Base: name, Power: power}, nil
	}

	for _, prefix := range reg.PrefixOrder() {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}
		if reg.Known(rest) {
			return Term{Prefix: prefix, Base: rest, Power: power}, nil
		}
	}

	return Term{}, &UnknownUnitError{Symbol: name}
}

// HasExplicitPower reports whether token carries a "^power" suffix.
func HasExplicitPower(token string) bool {
	return strings.Contains(token, "^")
}
