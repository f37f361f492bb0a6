// Package system models unit systems: an assignment of exactly one
// fundamental unit to each base dimension, used as a conversion target.
//
// A System built with New starts from the registry's SI representatives
// and applies the given overrides, so a foot-pound-second system is
// just New(reg, "slug", "ft", "s"). Construction validates that every
// override is a fundamental unit and that no two overrides share a
// base dimension.
package system
