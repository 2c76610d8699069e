package insert2

import "sync"

// edgeStackPool recycles the flip-propagation stack across insertions,
// in the manner of the teacher's epa.polytopeBuilderPool: a single call
// never needs more than the local neighborhood of one point, so the
// backing array is worth keeping warm rather than reallocating it on
// every Insert.
var edgeStackPool = sync.Pool{
	New: func() interface{} {
		s := make([]edgeRef, 0, 8)
		return &s
	},
}

func getEdgeStack() *[]edgeRef {
	return edgeStackPool.Get().(*[]edgeRef)
}

func putEdgeStack(s *[]edgeRef) {
	*s = (*s)[:0]
	edgeStackPool.Put(s)
}
