// Package quantity pairs numeric values with resolved units and
// implements dimension-aware arithmetic.
//
// A Quantity holds a scalar or a fixed-shape array of float64 plus a
// resolved unit, and is immutable: every operation returns a new
// Quantity. Multiplication, division, and powers compose units as pure
// scale factors. Addition and subtraction follow the asymmetric
// temperature rules: an absolute reading plus a delta stays absolute,
// while subtracting two absolute readings of the same scale yields a
// delta. Conversions into difference units use scale only; the
// additive offset applies only to bare absolute temperature units.
//
// At construction, an absolute temperature paired with a value below
// its physical floor (below absolute zero) is reclassified to the
// matching delta_ unit, keeping the invariant that a difference unit
// always carries a delta and never an absolute reading.
package quantity
