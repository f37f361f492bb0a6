// Package unit parses compound unit strings and resolves them against
// a registry into canonical SI form.
//
// A compound unit string is a whitespace-delimited list of tokens such
// as "kg m s^-2" or "kPa^-2". Each token is an optional multiplier
// prefix, a fundamental or derived symbol, and an optional "^power"
// suffix. Resolution expands derived units recursively and accumulates
// a cumulative SI scale and, for bare absolute temperature units, an
// additive SI offset.
//
// The package also provides string-level unit algebra (Condense,
// Multiply, Divide, Pow) and the Unit value object combining the
// canonical name, dimension vector, SI scale/offset, and classified
// kind. Unit values are immutable.
package unit
