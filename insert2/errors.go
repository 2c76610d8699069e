package insert2

import "errors"

// ErrDuplicatePoint is returned (wrapped) when the located point
// coincides with an existing vertex. It is a soft condition: the
// caller should report it and move on to the next input point rather
// than abort the build.
var ErrDuplicatePoint = errors.New("insert2: point coincides with an existing vertex")

// ErrUnexpectedLocation is returned when Insert is given a
// locate.Result whose Kind it cannot act on.
var ErrUnexpectedLocation = errors.New("insert2: unexpected location kind")

// ErrInconsistentMesh is returned when a neighbor link the algorithm
// depends on does not hold, indicating the mesh invariants were
// already broken before this insertion.
var ErrInconsistentMesh = errors.New("insert2: inconsistent neighbor link")
