package insert2

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/predicate"
)

// boundaryEdge names a directed convex-hull boundary edge a->b owned
// by triangle tri (tri's neighbor opposite the edge's third vertex is
// mesh2.Outside).
type boundaryEdge struct {
	Tri  int
	A, B int
}

// insertOutside handles a point located outside the convex hull: it
// walks the hull boundary in both directions from the edge Locator
// found, collects every boundary edge visible from p, fans new
// triangles from p to each visible edge, and restores Delaunay-ness.
func insertOutside(m *mesh2.Mesh, t, face, p int) (int, error) {
	tri, err := m.Triangle(t)
	if err != nil {
		return 0, err
	}
	a := tri.Vertices[(face+1)%3]
	b := tri.Vertices[(face+2)%3]
	pv := m.Vertex(p)

	visible := []boundaryEdge{{Tri: t, A: a, B: b}}

	cur := visible[0]
	maxSteps := m.NumLive() + 8
	for step := 0; ; step++ {
		if step > maxSteps {
			return 0, fmt.Errorf("%w: hull walk did not terminate", ErrInconsistentMesh)
		}
		next, err := nextBoundaryEdge(m, cur.Tri, cur.A, cur.B)
		if err != nil {
			return 0, err
		}
		sign, err := predicate.Orient2D(m.Vertex(next.A), m.Vertex(next.B), pv)
		if err != nil {
			return 0, err
		}
		if sign >= 0 {
			break
		}
		visible = append(visible, next)
		cur = next
	}

	cur = visible[0]
	for step := 0; ; step++ {
		if step > maxSteps {
			return 0, fmt.Errorf("%w: hull walk did not terminate", ErrInconsistentMesh)
		}
		prev, err := prevBoundaryEdge(m, cur.Tri, cur.A, cur.B)
		if err != nil {
			return 0, err
		}
		sign, err := predicate.Orient2D(m.Vertex(prev.A), m.Vertex(prev.B), pv)
		if err != nil {
			return 0, err
		}
		if sign >= 0 {
			break
		}
		visible = append([]boundaryEdge{prev}, visible...)
		cur = prev
	}

	boundary := make([]int, len(visible)+1)
	oldOwners := make([]int, len(visible))
	for i, e := range visible {
		boundary[i] = e.A
		oldOwners[i] = e.Tri
	}
	boundary[len(visible)] = visible[len(visible)-1].B

	newTris, err := starExtend(m, boundary, oldOwners, p)
	if err != nil {
		return 0, err
	}

	bufp := getEdgeStack()
	stack := *bufp
	defer func() {
		*bufp = stack
		putEdgeStack(bufp)
	}()
	for _, idx := range newTris {
		stack, err = pushOppositeP(m, stack, idx, p)
		if err != nil {
			return 0, err
		}
	}
	if err := propagateFlips(m, stack, p); err != nil {
		return 0, err
	}
	return newTris[0], nil
}

// starExtend fans an open boundary chain [boundary[0], ..., boundary[k]]
// around p, creating k new triangles (boundary[i+1], boundary[i], p): the
// hull edge a->b is visible from p because orient2d(a,b,p) < 0 (that is
// what made the Locator report Outside across it), so the positively
// oriented new triangle is (b, a, p), not (a, b, p).
// oldOwners[i] is the existing, still-live triangle across edge
// (boundary[i], boundary[i+1]) whose Outside link is replaced in place.
func starExtend(m *mesh2.Mesh, boundary, oldOwners []int, p int) ([]int, error) {
	k := len(oldOwners)
	newTris := make([]int, k)
	for i := 0; i < k; i++ {
		newTris[i] = m.Alloc([3]int{boundary[i+1], boundary[i], p}, [3]int{0, 0, 0})
	}
	for i := 0; i < k; i++ {
		// Vertex order is (boundary[i+1], boundary[i], p): local index 0
		// (opposite boundary[i+1]) bounds edge (boundary[i], p), shared
		// with the previous fan triangle; local index 1 (opposite
		// boundary[i]) bounds edge (boundary[i+1], p), shared with the
		// next one.
		prev := mesh2.Outside
		if i > 0 {
			prev = newTris[i-1]
		}
		next := mesh2.Outside
		if i < k-1 {
			next = newTris[i+1]
		}
		if err := m.SetNeighbor(newTris[i], 0, prev); err != nil {
			return nil, err
		}
		if err := m.SetNeighbor(newTris[i], 1, next); err != nil {
			return nil, err
		}
		if err := m.SetNeighbor(newTris[i], 2, oldOwners[i]); err != nil {
			return nil, err
		}

		oldTri, err := m.Triangle(oldOwners[i])
		if err != nil {
			return nil, err
		}
		third := thirdVertex(oldTri.Vertices, boundary[i], boundary[i+1])
		thirdLocal := localIndexOfVertex(oldTri.Vertices, third)
		if thirdLocal < 0 {
			return nil, ErrInconsistentMesh
		}
		if err := m.SetNeighbor(oldOwners[i], thirdLocal, newTris[i]); err != nil {
			return nil, err
		}
	}
	return newTris, nil
}

// nextBoundaryEdge returns the boundary edge immediately following
// a->b in the hull's consistent traversal direction (sharing vertex b).
func nextBoundaryEdge(m *mesh2.Mesh, t, a, b int) (boundaryEdge, error) {
	tri, err := m.Triangle(t)
	if err != nil {
		return boundaryEdge{}, err
	}
	c := thirdVertex(tri.Vertices, a, b)
	away := a
	cur := t

	maxSteps := 4 * m.NumLive()
	for step := 0; ; step++ {
		if step > maxSteps {
			return boundaryEdge{}, fmt.Errorf("%w: vertex rotation did not terminate", ErrInconsistentMesh)
		}
		curTri, err := m.Triangle(cur)
		if err != nil {
			return boundaryEdge{}, err
		}
		local := localIndexOfVertex(curTri.Vertices, away)
		if local < 0 {
			return boundaryEdge{}, ErrInconsistentMesh
		}
		n := curTri.Neighbors[local]
		if n == mesh2.Outside {
			return boundaryEdge{Tri: cur, A: b, B: c}, nil
		}
		cur = n
		nextTri, err := m.Triangle(cur)
		if err != nil {
			return boundaryEdge{}, err
		}
		away = c
		c = thirdVertex(nextTri.Vertices, b, c)
	}
}

// prevBoundaryEdge returns the boundary edge immediately preceding a->b
// in the hull's consistent traversal direction (sharing vertex a).
func prevBoundaryEdge(m *mesh2.Mesh, t, a, b int) (boundaryEdge, error) {
	tri, err := m.Triangle(t)
	if err != nil {
		return boundaryEdge{}, err
	}
	c := thirdVertex(tri.Vertices, a, b)
	away := b
	cur := t

	maxSteps := 4 * m.NumLive()
	for step := 0; ; step++ {
		if step > maxSteps {
			return boundaryEdge{}, fmt.Errorf("%w: vertex rotation did not terminate", ErrInconsistentMesh)
		}
		curTri, err := m.Triangle(cur)
		if err != nil {
			return boundaryEdge{}, err
		}
		local := localIndexOfVertex(curTri.Vertices, away)
		if local < 0 {
			return boundaryEdge{}, ErrInconsistentMesh
		}
		n := curTri.Neighbors[local]
		if n == mesh2.Outside {
			return boundaryEdge{Tri: cur, A: c, B: a}, nil
		}
		cur = n
		nextTri, err := m.Triangle(cur)
		if err != nil {
			return boundaryEdge{}, err
		}
		away = c
		c = thirdVertex(nextTri.Vertices, a, c)
	}
}

// thirdVertex returns the element of vertices that is neither x nor y.
func thirdVertex(vertices [3]int, x, y int) int {
	for _, v := range vertices {
		if v != x && v != y {
			return v
		}
	}
	return -1
}
