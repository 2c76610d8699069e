package insert3

import "errors"

// ErrDuplicatePoint is returned when the located point coincides with
// an existing vertex; the caller should treat this as a soft warning.
var ErrDuplicatePoint = errors.New("insert3: point coincides with an existing vertex")

// ErrUnexpectedLocation is returned for a locate.Result.Kind the
// Inserter does not recognize.
var ErrUnexpectedLocation = errors.New("insert3: unexpected location kind")

// ErrInconsistentMesh is returned when a neighbor link the algorithm
// expects to find is missing, indicating the mesh was not in the
// invariant-preserving state the Inserter requires.
var ErrInconsistentMesh = errors.New("insert3: inconsistent neighbor link")

// ErrGeometricDegeneracy is returned when the Bowyer-Watson cavity's
// boundary is not a topological sphere around p (an edge of the
// boundary surface is shared by a number of boundary faces other than
// two). The mesh is left unchanged.
var ErrGeometricDegeneracy = errors.New("insert3: cavity boundary is not star-shaped from the inserted point")
