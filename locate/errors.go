package locate

import "errors"

// ErrNonFiniteCoordinate is returned when the query point (or a mesh
// vertex it is compared against) contains a NaN or infinite coordinate.
var ErrNonFiniteCoordinate = errors.New("locate: non-finite coordinate")

// ErrDegenerateMesh is returned when the walk finds a broken invariant
// it cannot recover from: a degenerate (zero-volume) simplex, or a walk
// that fails to terminate within the expected step bound, both of which
// indicate mesh corruption rather than a location result.
var ErrDegenerateMesh = errors.New("locate: degenerate mesh")
