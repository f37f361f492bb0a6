// Package tableparse loads external unit-table data from versioned
// YAML files into raw structs.
//
// Table data is external, versioned configuration: multiplier
// prefixes, fundamental units, derived units, and quantity-name
// mappings. This package only deserializes; building a usable registry
// from the raw structs, including validation of compositions, is done
// by registry.FromRaw.
package tableparse
