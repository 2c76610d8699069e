package delaunay

import "errors"

// ErrInvalidInput is returned when a coordinate encountered during seed
// selection or point location is not finite (NaN or +-Inf).
var ErrInvalidInput = errors.New("delaunay: non-finite coordinate")

// ErrInsufficientInput is returned when the deduplicated input has fewer
// than d+1 points, or every point is collinear (2D) / coplanar (3D), so
// no seed simplex can be formed.
var ErrInsufficientInput = errors.New("delaunay: insufficient non-degenerate input")

// ErrDuplicatePoint names the duplicate-point case. Neither the up-front
// exact-coordinate dedup pass nor the defensive in-walk duplicate path
// returns it; both only log through Options.Logger and go on. A caller that needs to distinguish this soft case from
// a hard failure should check Options.Logger's Warn calls rather than
// expect this sentinel from BuildDelaunay2D/3D, which never returns it.
var ErrDuplicatePoint = errors.New("delaunay: point coincides with an existing vertex")

// ErrGeometricDegeneracy is returned when a 3D cavity's boundary cannot
// be matched into a star around the inserted point (insert3's
// boundary-matching abort). With robust predicates this should be
// unreachable; it surfaces defensively.
var ErrGeometricDegeneracy = errors.New("delaunay: unresolvable geometric degeneracy")

// ErrInternal indicates a broken invariant (neighbor asymmetry, bad
// orientation, a locate/insert step the Driver did not expect) rather
// than a property of the input. It is not recoverable by retrying.
var ErrInternal = errors.New("delaunay: internal invariant violation")
