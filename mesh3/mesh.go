package mesh3

import "github.com/go-gl/mathgl/mgl64"

// Outside is the sentinel neighbor value marking a convex-hull boundary
// face: the triangular face opposite the local vertex has no incident
// tetrahedron on its far side.
const Outside = -1

// Tetrahedron is an ordered quadruple of vertex indices (v0, v1, v2,
// v3), oriented so that orient3d(v0, v1, v2, v3) > 0, plus the four
// neighbor links. Neighbors[i] is the tetrahedron sharing the face
// opposite Vertices[i], or Outside if that face lies on the convex
// hull.
type Tetrahedron struct {
	Vertices  [4]int
	Neighbors [4]int
}

// Mesh is a dense, index-stable collection of Tetrahedron records with
// free-list reuse, plus the fixed vertex point table the Driver
// populates once during seeding/dedup.
type Mesh struct {
	points []mgl64.Vec3
	tets   []Tetrahedron
	alive  []bool
	free   []int
}

// New creates a Mesh over the given (already deduplicated) point set.
func New(points []mgl64.Vec3) *Mesh {
	return &Mesh{points: points}
}

// Reserve preallocates the backing tetrahedron slice to hold n entries,
// avoiding reallocation as the Driver's insertion loop grows it. It is a
// no-op once any tetrahedron has been allocated.
func (m *Mesh) Reserve(n int) {
	if len(m.tets) == 0 && cap(m.tets) < n {
		m.tets = make([]Tetrahedron, 0, n)
		m.alive = make([]bool, 0, n)
	}
}

// NumVertices returns the number of points in the mesh's vertex table.
func (m *Mesh) NumVertices() int {
	return len(m.points)
}

// Vertex returns the coordinates of vertex index i.
func (m *Mesh) Vertex(i int) mgl64.Vec3 {
	return m.points[i]
}

// Alloc creates a new tetrahedron from the given vertex and neighbor
// tuples, reusing a freed slot when one is available, and returns its
// index. The caller guarantees vertices are positively oriented.
func (m *Mesh) Alloc(vertices, neighbors [4]int) int {
	t := Tetrahedron{Vertices: vertices, Neighbors: neighbors}
	if n := len(m.free); n > 0 {
		idx := m.free[n-1]
		m.free = m.free[:n-1]
		m.tets[idx] = t
		m.alive[idx] = true
		return idx
	}
	m.tets = append(m.tets, t)
	m.alive = append(m.alive, true)
	return len(m.tets) - 1
}

// Free marks idx's slot reusable. Subsequent accessors for idx return
// ErrFreed until the slot is recycled by a later Alloc.
func (m *Mesh) Free(idx int) error {
	if !m.IsLive(idx) {
		return ErrFreed
	}
	m.alive[idx] = false
	m.tets[idx] = Tetrahedron{}
	m.free = append(m.free, idx)
	return nil
}

// IsLive reports whether idx is in range and currently allocated.
func (m *Mesh) IsLive(idx int) bool {
	return idx >= 0 && idx < len(m.tets) && m.alive[idx]
}

// Tetrahedron returns a copy of the tetrahedron record at idx.
func (m *Mesh) Tetrahedron(idx int) (Tetrahedron, error) {
	if !m.IsLive(idx) {
		return Tetrahedron{}, ErrFreed
	}
	return m.tets[idx], nil
}

// Vertices returns the vertex-index quadruple of tetrahedron idx.
func (m *Mesh) Vertices(idx int) ([4]int, error) {
	if !m.IsLive(idx) {
		return [4]int{}, ErrFreed
	}
	return m.tets[idx].Vertices, nil
}

// Neighbors returns the neighbor quadruple of tetrahedron idx.
func (m *Mesh) Neighbors(idx int) ([4]int, error) {
	if !m.IsLive(idx) {
		return [4]int{}, ErrFreed
	}
	return m.tets[idx].Neighbors, nil
}

// SetNeighbor splices tetrahedron idx's neighbor opposite local vertex
// local to point at neighbor (or Outside). It does not touch the other
// side of the link; callers that need mirror symmetry set both sides.
func (m *Mesh) SetNeighbor(idx, local, neighbor int) error {
	if !m.IsLive(idx) {
		return ErrFreed
	}
	if local < 0 || local >= 4 {
		return ErrInvalidLocal
	}
	m.tets[idx].Neighbors[local] = neighbor
	return nil
}

// LocalVertexIndex returns the local slot (0..3) of vertex v within
// tetrahedron idx's Vertices tuple, or -1 if v is not one of its
// vertices.
func (m *Mesh) LocalVertexIndex(idx, v int) (int, error) {
	t, err := m.Tetrahedron(idx)
	if err != nil {
		return -1, err
	}
	for i, vi := range t.Vertices {
		if vi == v {
			return i, nil
		}
	}
	return -1, nil
}

// NumLive returns the number of currently allocated tetrahedra.
func (m *Mesh) NumLive() int {
	return len(m.tets) - len(m.free)
}

// LiveIndices returns the indices of all currently allocated
// tetrahedra, in ascending order.
func (m *Mesh) LiveIndices() []int {
	out := make([]int, 0, m.NumLive())
	for i, ok := range m.alive {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
