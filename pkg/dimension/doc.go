// Package dimension defines the base physical dimensions and the
// dimension vector used throughout the engine.
//
// A dimension vector is a fixed-length exponent tuple over ten base
// dimensions. It describes the physical dimension of a unit independent
// of scale: "km" and "m" share the same vector. Temperature and
// temperature difference are deliberately separate dimensions so that
// absolute readings and deltas never mix silently.
//
// Vectors are plain value types. All operations return new vectors.
package dimension
