package insert2

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/predicate"
)

// edgeRef names an edge by the triangle owning it, the vertex p it is
// opposite, and the edge's own two endpoint vertices A, B. Keying by the
// endpoints (rather than just the local index last seen) means a stack
// entry for a triangle slot that gets freed and reallocated to an
// unrelated triangle is recognized as stale even if the recycled slot
// happens to carry p again at the same local index.
type edgeRef struct {
	Tri  int
	P    int
	A, B int
}

// pushOppositeP appends the edge of tri opposite vertex p onto stack.
func pushOppositeP(m *mesh2.Mesh, stack []edgeRef, tri, p int) ([]edgeRef, error) {
	vertices, err := m.Vertices(tri)
	if err != nil {
		return nil, err
	}
	local := localIndexOfVertex(vertices, p)
	if local < 0 {
		return nil, fmt.Errorf("%w: triangle %d does not contain vertex %d", ErrInconsistentMesh, tri, p)
	}
	a, b := vertices[(local+1)%3], vertices[(local+2)%3]
	return append(stack, edgeRef{Tri: tri, P: p, A: a, B: b}), nil
}

// propagateFlips drains the stack of candidate edges, performing a
// Lawson flip whenever the far vertex lies strictly inside the
// circumcircle of the near triangle, and pushing the two freshly
// created edges opposite p after each flip.
func propagateFlips(m *mesh2.Mesh, stack []edgeRef, p int) error {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tri, err := m.Triangle(e.Tri)
		if err != nil {
			continue // stale entry from an earlier flip; the edge no longer exists
		}
		local := localIndexOfVertex(tri.Vertices, e.P)
		if local < 0 {
			continue // slot was recycled for a triangle that doesn't even carry p
		}
		a1, b1 := tri.Vertices[(local+1)%3], tri.Vertices[(local+2)%3]
		if !(a1 == e.A && b1 == e.B || a1 == e.B && b1 == e.A) {
			continue // slot was recycled for an unrelated triangle sharing p
		}

		neighborIdx := tri.Neighbors[local]
		if neighborIdx == mesh2.Outside {
			continue
		}
		neighbor, err := m.Triangle(neighborIdx)
		if err != nil {
			continue
		}
		back := indexOf(neighbor.Neighbors[:], e.Tri)
		if back < 0 {
			return fmt.Errorf("%w: triangle %d has no neighbor link back to %d", ErrInconsistentMesh, neighborIdx, e.Tri)
		}
		q := neighbor.Vertices[back]

		a, b, c := m.Vertex(tri.Vertices[0]), m.Vertex(tri.Vertices[1]), m.Vertex(tri.Vertices[2])
		sign, err := predicate.InCircle(a, b, c, m.Vertex(q))
		if err != nil {
			return err
		}
		if sign <= 0 {
			continue
		}

		new1, new2, err := flipEdge(m, e.Tri, local, neighborIdx, back)
		if err != nil {
			return err
		}
		stack, err = pushOppositeP(m, stack, new1, p)
		if err != nil {
			return err
		}
		stack, err = pushOppositeP(m, stack, new2, p)
		if err != nil {
			return err
		}
	}
	return nil
}

// flipEdge replaces the two triangles t (apex p, opposite face at
// local index pLocal) and tprime (apex q, opposite face at local index
// qLocal) sharing the diagonal (ea, eb) with two triangles sharing the
// diagonal (p, q) instead, and returns their indices.
func flipEdge(m *mesh2.Mesh, t, pLocal, tprime, qLocal int) (int, int, error) {
	tv, err := m.Vertices(t)
	if err != nil {
		return 0, 0, err
	}
	tn, err := m.Neighbors(t)
	if err != nil {
		return 0, 0, err
	}
	tpv, err := m.Vertices(tprime)
	if err != nil {
		return 0, 0, err
	}
	tpn, err := m.Neighbors(tprime)
	if err != nil {
		return 0, 0, err
	}

	p := tv[pLocal]
	q := tpv[qLocal]
	ea := tv[(pLocal+1)%3]
	eb := tv[(pLocal+2)%3]

	xa := tn[(pLocal+2)%3] // t's neighbor opposite eb: edge (p, ea)
	xb := tn[(pLocal+1)%3] // t's neighbor opposite ea: edge (eb, p)

	eaInTprime := localIndexOfVertex(tpv, ea)
	ebInTprime := localIndexOfVertex(tpv, eb)
	if eaInTprime < 0 || ebInTprime < 0 {
		return 0, 0, fmt.Errorf("%w: shared edge not found between triangles %d and %d", ErrInconsistentMesh, t, tprime)
	}
	ya := tpn[eaInTprime] // tprime's neighbor opposite ea: edge (q, eb)
	yb := tpn[ebInTprime] // tprime's neighbor opposite eb: edge (ea, q)

	if err := m.Free(t); err != nil {
		return 0, 0, err
	}
	if err := m.Free(tprime); err != nil {
		return 0, 0, err
	}

	new1 := m.Alloc([3]int{p, ea, q}, [3]int{yb, 0, xa})
	new2 := m.Alloc([3]int{p, q, eb}, [3]int{ya, xb, 0})
	if err := m.SetNeighbor(new1, 1, new2); err != nil {
		return 0, 0, err
	}
	if err := m.SetNeighbor(new2, 2, new1); err != nil {
		return 0, 0, err
	}

	if err := fixBacklink(m, yb, tprime, new1); err != nil {
		return 0, 0, err
	}
	if err := fixBacklink(m, xa, t, new1); err != nil {
		return 0, 0, err
	}
	if err := fixBacklink(m, ya, tprime, new2); err != nil {
		return 0, 0, err
	}
	if err := fixBacklink(m, xb, t, new2); err != nil {
		return 0, 0, err
	}

	return new1, new2, nil
}
