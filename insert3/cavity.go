package insert3

import (
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
)

// boundaryFace3 is one oriented face of the cavity boundary: the three
// vertices (outward-oriented, so orient3d(a,b,c,p) > 0 for the new
// apex tetrahedron) plus the non-cavity tetrahedron on the far side
// (mesh3.Outside for a hull face).
type boundaryFace3 struct {
	A, B, C int
	Ext     int
	OldTet  int
	OldLoc  int
}

// buildCavity grows the Bowyer-Watson cavity by breadth-first search
// from seeds, which are already known to belong to the cavity (either
// the Locator's containing tetrahedron for an interior insertion, or
// every visible hull face's tetrahedron for a point landing outside
// the hull). A neighbor is added to the cavity iff in_sphere(neighbor's
// own vertices, p) is strictly positive; a zero or negative sign stops
// the search along that link without including the neighbor.
func buildCavity(w *cavityWorkspace, m *mesh3.Mesh, seeds []int, p int) (order []int, err error) {
	inCavity := w.inCavity
	visited := w.visited
	queue := w.queue
	for _, s := range seeds {
		if !inCavity[s] {
			inCavity[s] = true
			visited[s] = true
			queue = append(queue, s)
			order = append(order, s)
		}
	}

	pv := m.Vertex(p)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		tet, terr := m.Tetrahedron(cur)
		if terr != nil {
			return nil, terr
		}
		for _, nb := range tet.Neighbors {
			if nb == mesh3.Outside || visited[nb] {
				continue
			}
			visited[nb] = true
			nbTet, terr := m.Tetrahedron(nb)
			if terr != nil {
				return nil, terr
			}
			v0, v1, v2, v3 := nbTet.Vertices[0], nbTet.Vertices[1], nbTet.Vertices[2], nbTet.Vertices[3]
			sign, terr := predicate.InSphere(m.Vertex(v0), m.Vertex(v1), m.Vertex(v2), m.Vertex(v3), pv)
			if terr != nil {
				return nil, terr
			}
			if sign > 0 {
				inCavity[nb] = true
				queue = append(queue, nb)
				order = append(order, nb)
			}
		}
	}
	w.queue = queue
	return order, nil
}

// cavityBoundary lists every boundary face of the cavity: for each
// cavity tetrahedron (visited in discovery order) and each local vertex
// whose opposite neighbor is not in the cavity, the outward-oriented
// triangle and that neighbor.
func cavityBoundary(m *mesh3.Mesh, inCavity map[int]bool, order []int) ([]boundaryFace3, error) {
	var faces []boundaryFace3
	for _, idx := range order {
		tet, err := m.Tetrahedron(idx)
		if err != nil {
			return nil, err
		}
		for local, nb := range tet.Neighbors {
			if nb != mesh3.Outside && inCavity[nb] {
				continue
			}
			a, b, c, err := outwardFace(m, idx, local)
			if err != nil {
				return nil, err
			}
			faces = append(faces, boundaryFace3{A: a, B: b, C: c, Ext: nb, OldTet: idx, OldLoc: local})
		}
	}
	return faces, nil
}
