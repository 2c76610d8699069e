package insert3

import (
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
)

type hullFaceKey struct {
	Tet, Local int
}

// visibleHullFaces flood-fills the convex hull's boundary surface
// starting from the face the Locator reported (t, face), collecting
// every hull face whose outward-oriented triangle has p strictly on
// its far side (orient3d < 0). These become the Bowyer-Watson cavity
// seed set for a point landing outside the hull, generalizing the 2D
// engine's boundary-edge walk to the hull's 2-manifold surface.
func visibleHullFaces(m *mesh3.Mesh, t, face, p int) ([]int, error) {
	a, b, c, err := outwardFace(m, t, face)
	if err != nil {
		return nil, err
	}

	visited := map[hullFaceKey]bool{{t, face}: true}
	queue := []hullFaceKey{{t, face}}
	verts := map[hullFaceKey][3]int{{t, face}: {a, b, c}}
	visible := []int{t}
	pv := m.Vertex(p)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		v := verts[cur]

		edges := [3][2]int{{v[1], v[2]}, {v[2], v[0]}, {v[0], v[1]}}
		thirds := [3]int{v[0], v[1], v[2]}
		tet, err := m.Tetrahedron(cur.Tet)
		if err != nil {
			return nil, err
		}
		apex := tet.Vertices[cur.Local]

		for i, e := range edges {
			nt, nl, err := walkEdgeToHullFace(m, cur.Tet, e[0], e[1], thirds[i], apex)
			if err != nil {
				return nil, err
			}
			key := hullFaceKey{nt, nl}
			if visited[key] {
				continue
			}
			visited[key] = true

			na, nb, nc, err := outwardFace(m, nt, nl)
			if err != nil {
				return nil, err
			}
			sign, err := predicate.Orient3D(m.Vertex(na), m.Vertex(nb), m.Vertex(nc), pv)
			if err != nil {
				return nil, err
			}
			if sign >= 0 {
				continue
			}
			verts[key] = [3]int{na, nb, nc}
			queue = append(queue, key)
			visible = append(visible, nt)
		}
	}

	return visible, nil
}
