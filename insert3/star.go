package insert3

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
)

type edgeKey [2]int

func canonicalEdge(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

// edgeSlot names the new tetrahedron (by boundary-face index, resolved
// to a real mesh index only once allocation begins) and the local
// neighbor slot that must point at the other tetrahedron sharing this
// edge.
type edgeSlot struct {
	Face  int
	Local int
}

// buildStar validates the cavity boundary and, only once validation
// succeeds, allocates the new tetrahedra and wires every neighbor link:
// Neighbors[3] (opposite p) to the face's external tetrahedron, and
// Neighbors[0..2] to the other new tetrahedra sharing an edge with it,
// matched by hashing each boundary edge to the two faces that carry it.
// A validation failure returns before any mesh mutation; a failure while
// wiring links leaves the tetrahedra already allocated in the mesh.
func buildStar(m *mesh3.Mesh, faces []boundaryFace3, p int) ([]int, error) {
	pv := m.Vertex(p)
	edges := make(map[edgeKey][]edgeSlot, len(faces)*3)

	for fi := range faces {
		f := &faces[fi]
		sign, err := predicate.Orient3D(m.Vertex(f.A), m.Vertex(f.B), m.Vertex(f.C), pv)
		if err != nil {
			return nil, err
		}
		if sign == 0 {
			return nil, fmt.Errorf("%w: boundary face is not visible from the inserted point", ErrGeometricDegeneracy)
		}
		if sign < 0 {
			// A hull-seeded Outside face is oriented outward (away from
			// the cavity it used to bound), which is the opposite sense
			// from an interior face (oriented toward the cavity, i.e.
			// toward p once the cavity is emptied). Swapping A/B re-winds
			// it to the same positively-oriented-toward-p convention the
			// interior case already satisfies, rather than rejecting it.
			f.A, f.B = f.B, f.A
		}

		edges[canonicalEdge(f.B, f.C)] = append(edges[canonicalEdge(f.B, f.C)], edgeSlot{Face: fi, Local: 0})
		edges[canonicalEdge(f.A, f.C)] = append(edges[canonicalEdge(f.A, f.C)], edgeSlot{Face: fi, Local: 1})
		edges[canonicalEdge(f.A, f.B)] = append(edges[canonicalEdge(f.A, f.B)], edgeSlot{Face: fi, Local: 2})
	}

	for key, slots := range edges {
		if len(slots) != 2 {
			return nil, fmt.Errorf("%w: edge {%d,%d} shared by %d boundary faces, want 2",
				ErrGeometricDegeneracy, key[0], key[1], len(slots))
		}
	}

	newTets := make([]int, len(faces))
	for fi, f := range faces {
		newTets[fi] = m.Alloc([4]int{f.A, f.B, f.C, p}, [4]int{0, 0, 0, f.Ext})
	}

	for fi, f := range faces {
		if f.Ext == mesh3.Outside {
			continue
		}
		if err := fixBacklink3(m, f.Ext, f.OldTet, newTets[fi]); err != nil {
			return nil, err
		}
	}

	for _, slots := range edges {
		t0, t1 := newTets[slots[0].Face], newTets[slots[1].Face]
		if err := m.SetNeighbor(t0, slots[0].Local, t1); err != nil {
			return nil, err
		}
		if err := m.SetNeighbor(t1, slots[1].Local, t0); err != nil {
			return nil, err
		}
	}

	return newTets, nil
}

// fixBacklink3 updates owner's neighbor slot that currently points at
// oldIdx to point at newIdx instead.
func fixBacklink3(m *mesh3.Mesh, owner, oldIdx, newIdx int) error {
	neighbors, err := m.Neighbors(owner)
	if err != nil {
		return err
	}
	local := -1
	for i, n := range neighbors {
		if n == oldIdx {
			local = i
			break
		}
	}
	if local < 0 {
		return fmt.Errorf("%w: triangle %d has no neighbor link to %d", ErrInconsistentMesh, owner, oldIdx)
	}
	return m.SetNeighbor(owner, local, newIdx)
}
