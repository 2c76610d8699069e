package mesh3

import "errors"

// ErrFreed is returned by any accessor called with an index that is
// out of range or refers to a slot that has been freed.
var ErrFreed = errors.New("mesh3: index refers to a freed or out-of-range tetrahedron")

// ErrInvalidLocal is returned when a local face/vertex index outside
// [0,4) is passed to a neighbor or vertex accessor.
var ErrInvalidLocal = errors.New("mesh3: local index out of range [0,4)")
