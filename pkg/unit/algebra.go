package unit

import (
	"strconv"
	"strings"
)

// symPower is one raw token of a unit string: the symbol text (prefix
// included, unresolved) and its power.
type symPower struct {
	sym   string
	power float64
}

// splitRaw tokenizes a unit string without consulting the table.
// A token whose power suffix fails to parse is kept whole with power 1
// so it renders back unchanged; table-driven resolution reports the
// real error.
func splitRaw(s string) []symPower {
	fields := strings.Fields(s)
	terms := make([]symPower, 0, len(fields))
	for _, tok := range fields {
		sym := tok
		power := 1.0
		if idx := strings.Index(tok, "^"); idx >= 0 {
			if p, err := strconv.ParseFloat(tok[idx+1:], 64); err == nil {
				sym = tok[:idx]
				power = p
			}
		}
		terms = append(terms, symPower{sym: sym, power: power})
	}
	return terms
}

// condenseTerms sums powers of duplicate symbols and drops zero-power
// terms, preserving first-appearance order.
func condenseTerms(terms []symPower) []symPower {
	index := make(map[string]int, len(terms))
	out := make([]symPower, 0, len(terms))
	for _, t := range terms {
		if i, ok := index[t.sym]; ok {
			out[i].power += t.power
			continue
		}
		index[t.sym] = len(out)
		out = append(out, t)
	}
	kept := out[:0]
	for _, t := range out {
		if t.power != 0 {
			kept = append(kept, t)
		}
	}
	return kept
}

// renderTerms renders terms as a unit string: "sym" for power 1,
// "sym^power" otherwise. Whole powers render without a decimal point.
func renderTerms(terms []symPower) string {
	var sb strings.Builder
	for _, t := range terms {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.sym)
		if t.power != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatFloat(t.power, 'g', -1, 64))
		}
	}
	return sb.String()
}

// Condense sums the powers of duplicate symbols in a unit string, drops
// zero-power terms, and renders the remainder. First appearance decides
// term order, so Condense is idempotent:
//
//	Condense("m m m m")        == "m^4"
//	Condense("kg ft^3 kg^-2")  == "kg^-1 ft^3"
//	Condense("s^2 s^-2")       == ""
func Condense(s string) string {
	return renderTerms(condenseTerms(splitRaw(s)))
}

// Multiply returns the condensed product of two unit strings.
func Multiply(a, b string) string {
	return renderTerms(condenseTerms(append(splitRaw(a), splitRaw(b)...)))
}

// Divide returns the condensed quotient of two unit strings.
func Divide(a, b string) string {
	return Multiply(a, Pow(b, -1))
}

// Pow returns the condensed unit string with every power scaled by p.
func Pow(s string, p float64) string {
	terms := splitRaw(s)
	for i := range terms {
		terms[i].power *= p
	}
	return renderTerms(condenseTerms(terms))
}
