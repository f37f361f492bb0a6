// Package registry holds the unit table: multiplier prefixes,
// fundamental units, derived units, and quantity-name mappings.
//
// A Registry is populated once (from the built-in table or from parsed
// external data) and is read-only afterward, so it is safe to share
// across concurrent readers. The one exception is runtime extension:
// RegisterFundamental and RegisterDerived add new symbols under an
// internal lock, at most once per symbol. Duplicate registration fails
// rather than silently overwriting.
//
// The registry stores definitions only. Resolving a compound unit
// string against the table is the job of the unit package.
package registry
