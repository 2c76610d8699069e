package mesh2

import "errors"

// ErrFreed is returned by any accessor called with an index that is
// out of range or refers to a slot that has been freed.
var ErrFreed = errors.New("mesh2: index refers to a freed or out-of-range triangle")

// ErrInvalidLocal is returned when a local face/vertex index outside
// [0,3) is passed to a neighbor or vertex accessor.
var ErrInvalidLocal = errors.New("mesh2: local index out of range [0,3)")
