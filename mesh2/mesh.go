package mesh2

import "github.com/go-gl/mathgl/mgl64"

// Outside is the sentinel neighbor value marking a convex-hull boundary
// face: the edge opposite the local vertex has no incident triangle on
// its far side.
const Outside = -1

// Triangle is an ordered triple of vertex indices (v0, v1, v2), oriented
// so that orient2d(v0, v1, v2) > 0, plus the three neighbor links.
// Neighbors[i] is the triangle sharing the edge opposite Vertices[i], or
// Outside if that edge lies on the convex hull.
type Triangle struct {
	Vertices  [3]int
	Neighbors [3]int
}

// Mesh is a dense, index-stable collection of Triangle records with
// free-list reuse, plus the fixed vertex point table the Driver
// populates once during seeding/dedup.
type Mesh struct {
	points    []mgl64.Vec2
	triangles []Triangle
	alive     []bool
	free      []int
}

// New creates a Mesh over the given (already deduplicated) point set.
// Vertex indices handed to Alloc and read back from Vertices refer into
// this slice.
func New(points []mgl64.Vec2) *Mesh {
	return &Mesh{points: points}
}

// Reserve preallocates the backing triangle slice to hold n entries,
// avoiding reallocation as the Driver's insertion loop grows it. It is a
// no-op once any triangle has been allocated.
func (m *Mesh) Reserve(n int) {
	if len(m.triangles) == 0 && cap(m.triangles) < n {
		m.triangles = make([]Triangle, 0, n)
		m.alive = make([]bool, 0, n)
	}
}

// NumVertices returns the number of points in the mesh's vertex table.
func (m *Mesh) NumVertices() int {
	return len(m.points)
}

// Vertex returns the coordinates of vertex index i.
func (m *Mesh) Vertex(i int) mgl64.Vec2 {
	return m.points[i]
}

// Alloc creates a new triangle from the given vertex and neighbor
// tuples, reusing a freed slot when one is available, and returns its
// index. The caller guarantees vertices are positively oriented.
func (m *Mesh) Alloc(vertices, neighbors [3]int) int {
	t := Triangle{Vertices: vertices, Neighbors: neighbors}
	if n := len(m.free); n > 0 {
		idx := m.free[n-1]
		m.free = m.free[:n-1]
		m.triangles[idx] = t
		m.alive[idx] = true
		return idx
	}
	m.triangles = append(m.triangles, t)
	m.alive = append(m.alive, true)
	return len(m.triangles) - 1
}

// Free marks idx's slot reusable. Subsequent accessors for idx return
// ErrFreed until the slot is recycled by a later Alloc.
func (m *Mesh) Free(idx int) error {
	if !m.IsLive(idx) {
		return ErrFreed
	}
	m.alive[idx] = false
	m.triangles[idx] = Triangle{}
	m.free = append(m.free, idx)
	return nil
}

// IsLive reports whether idx is in range and currently allocated.
func (m *Mesh) IsLive(idx int) bool {
	return idx >= 0 && idx < len(m.triangles) && m.alive[idx]
}

// Triangle returns a copy of the triangle record at idx.
func (m *Mesh) Triangle(idx int) (Triangle, error) {
	if !m.IsLive(idx) {
		return Triangle{}, ErrFreed
	}
	return m.triangles[idx], nil
}

// Vertices returns the vertex-index triple of triangle idx.
func (m *Mesh) Vertices(idx int) ([3]int, error) {
	if !m.IsLive(idx) {
		return [3]int{}, ErrFreed
	}
	return m.triangles[idx].Vertices, nil
}

// Neighbors returns the neighbor triple of triangle idx.
func (m *Mesh) Neighbors(idx int) ([3]int, error) {
	if !m.IsLive(idx) {
		return [3]int{}, ErrFreed
	}
	return m.triangles[idx].Neighbors, nil
}

// SetNeighbor splices triangle idx's neighbor opposite local vertex
// local to point at neighbor (or Outside). It does not touch the other
// side of the link; callers that need mirror symmetry set both sides.
func (m *Mesh) SetNeighbor(idx, local, neighbor int) error {
	if !m.IsLive(idx) {
		return ErrFreed
	}
	if local < 0 || local >= 3 {
		return ErrInvalidLocal
	}
	m.triangles[idx].Neighbors[local] = neighbor
	return nil
}

// LocalVertexIndex returns the local slot (0,1,2) of vertex v within
// triangle idx's Vertices tuple, or -1 if v is not one of its vertices.
func (m *Mesh) LocalVertexIndex(idx, v int) (int, error) {
	t, err := m.Triangle(idx)
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

// NumLive returns the number of currently allocated triangles.
func (m *Mesh) NumLive() int {
	return len(m.triangles) - len(m.free)
}

// LiveIndices returns the indices of all currently allocated triangles,
// in ascending order.
func (m *Mesh) LiveIndices() []int {
	out := make([]int, 0, m.NumLive())
	for i, ok := range m.alive {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
