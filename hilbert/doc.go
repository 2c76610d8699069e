// Package hilbert orders a set of 2D or 3D points along a Hilbert
// space-filling curve so that points nearby in the permutation are nearby
// in space. The Driver uses this ordering to feed points to the
// incremental construction engines: successive insertions then tend to
// land near the simplex most recently touched, which keeps the point
// location walk short.
package hilbert
