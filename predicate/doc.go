// Package predicate implements the robust geometric sign tests the rest of
// this module builds on: orientation (orient2d/orient3d) and in-circle /
// in-sphere tests.
//
// Every function returns the exact mathematical sign of a determinant
// evaluated on the bit-exact values of the supplied float64 coordinates. A
// fast path evaluates the determinant directly in float64 and bounds the
// worst-case rounding error; when the computed magnitude does not clear
// that bound the same determinant is re-evaluated exactly using
// arbitrary-precision arithmetic, so a zero is only ever returned when the
// true value is zero.
package predicate
