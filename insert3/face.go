package insert3

import (
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
)

// faceVertices returns the three vertices of vertices other than local
// index i, in ascending local-index order.
func faceVertices(vertices [4]int, i int) (a, b, c int) {
	out := make([]int, 0, 3)
	for local, v := range vertices {
		if local != i {
			out = append(out, v)
		}
	}
	return out[0], out[1], out[2]
}

// thirdVertex4 returns the element of vertices that is none of x, y, z.
func thirdVertex4(vertices [4]int, x, y, z int) int {
	for _, v := range vertices {
		if v != x && v != y && v != z {
			return v
		}
	}
	return -1
}

// localIndexOf4 returns the local slot of v within vertices, or -1.
func localIndexOf4(vertices [4]int, v int) int {
	for i, w := range vertices {
		if w == v {
			return i
		}
	}
	return -1
}

// outwardFace returns the vertices of the face of tetrahedron t
// opposite local vertex i, ordered so that orient3d(a, b, c, inner) is
// positive, where inner is t's own vertex i. Anything strictly beyond
// that face (on the far side from t's interior) then tests negative
// against orient3d(a, b, c, ·), matching the Locator's outside-facing
// convention.
func outwardFace(m *mesh3.Mesh, t, i int) (a, b, c int, err error) {
	tet, err := m.Tetrahedron(t)
	if err != nil {
		return 0, 0, 0, err
	}
	a, b, c = faceVertices(tet.Vertices, i)
	inner := tet.Vertices[i]
	sign, err := predicate.Orient3D(m.Vertex(a), m.Vertex(b), m.Vertex(c), m.Vertex(inner))
	if err != nil {
		return 0, 0, 0, err
	}
	if sign <= 0 {
		a, b = b, a
	}
	return a, b, c, nil
}

// walkEdgeToHullFace rotates around edge (p, q) through the ring of
// tetrahedra incident to it, starting from t, until it reaches a
// tetrahedron with an Outside neighbor across a face containing that
// edge. r is the third vertex of the face being rotated away from; s
// is t's own fourth vertex (not on that face). It mirrors the 2D hull's
// boundary-edge vertex-rotation one dimension up, pivoting around an
// edge instead of a single vertex.
func walkEdgeToHullFace(m *mesh3.Mesh, t, p, q, r, s int) (tet, local int, err error) {
	cur := t
	maxSteps := 4 * m.NumLive()
	for step := 0; ; step++ {
		if step > maxSteps {
			return 0, 0, ErrInconsistentMesh
		}
		curTet, err := m.Tetrahedron(cur)
		if err != nil {
			return 0, 0, err
		}
		local := localIndexOf4(curTet.Vertices, r)
		if local < 0 {
			return 0, 0, ErrInconsistentMesh
		}
		n := curTet.Neighbors[local]
		if n == mesh3.Outside {
			return cur, local, nil
		}
		nTet, err := m.Tetrahedron(n)
		if err != nil {
			return 0, 0, err
		}
		newOther := thirdVertex4(nTet.Vertices, p, q, s)
		if newOther < 0 {
			return 0, 0, ErrInconsistentMesh
		}
		r, s = s, newOther
		cur = n
	}
}
