package insert2

import (
	"testing"

	"github.com/akmonengine/delaunay/locate"
	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/predicate"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func checkSymmetry(t *testing.T, m *mesh2.Mesh) {
	t.Helper()
	for _, idx := range m.LiveIndices() {
		tri, err := m.Triangle(idx)
		require.NoError(t, err)
		for local, nb := range tri.Neighbors {
			if nb == mesh2.Outside {
				continue
			}
			nbTri, err := m.Triangle(nb)
			require.NoError(t, err)
			back := indexOf(nbTri.Neighbors[:], idx)
			require.GreaterOrEqualf(t, back, 0, "triangle %d has no backlink to %d", nb, idx)

			shared := 0
			for _, v := range tri.Vertices {
				if v != tri.Vertices[local] && indexOf(nbTri.Vertices[:], v) >= 0 {
					shared++
				}
			}
			require.Equal(t, 2, shared, "triangles %d and %d do not share an edge", idx, nb)
		}
	}
}

func checkDelaunay(t *testing.T, m *mesh2.Mesh) {
	t.Helper()
	for _, idx := range m.LiveIndices() {
		tri, err := m.Triangle(idx)
		require.NoError(t, err)
		a, b, c := m.Vertex(tri.Vertices[0]), m.Vertex(tri.Vertices[1]), m.Vertex(tri.Vertices[2])
		for local, nb := range tri.Neighbors {
			if nb == mesh2.Outside {
				continue
			}
			_ = local
			nbTri, err := m.Triangle(nb)
			require.NoError(t, err)
			back := indexOf(nbTri.Neighbors[:], idx)
			require.GreaterOrEqual(t, back, 0)
			q := nbTri.Vertices[back]
			sign, err := predicate.InCircle(a, b, c, m.Vertex(q))
			require.NoError(t, err)
			require.LessOrEqualf(t, sign, 0, "triangle %d circumcircle contains vertex %d", idx, q)
		}
	}
}

func TestInsertInsideSplitsIntoThree(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {2, 0}, {1, 2}, {1, 0.7}}
	m := mesh2.New(pts)
	seed := m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})

	hint, err := Insert(m, locate.Result{Kind: locate.Inside, Simplex: seed}, 3)
	require.NoError(t, err)
	require.True(t, m.IsLive(hint))
	require.Equal(t, 3, m.NumLive())
	checkSymmetry(t, m)
	checkDelaunay(t, m)
}

func TestInsertOnHullEdgeSplitsIntoTwo(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {2, 0}, {1, 2}, {1, 0}}
	m := mesh2.New(pts)
	seed := m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})

	_, err := Insert(m, locate.Result{Kind: locate.OnEdge2D, Simplex: seed, Faces: []int{2}}, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumLive())
	checkSymmetry(t, m)

	for _, idx := range m.LiveIndices() {
		v, err := m.Vertices(idx)
		require.NoError(t, err)
		require.Contains(t, v[:], 3)
	}
}

// buildSquare returns a 2-triangle mesh over the unit square (0,0)-(1,0)-
// (1,1)-(0,1), split along the (0,0)-(1,1) diagonal, plus a 5th point at
// the diagonal's midpoint that has not yet been inserted.
func buildSquare(t *testing.T) (m *mesh2.Mesh, a, b int) {
	t.Helper()
	pts := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	m = mesh2.New(pts)
	a = m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})
	b = m.Alloc([3]int{0, 2, 3}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})
	require.NoError(t, m.SetNeighbor(a, 1, b))
	require.NoError(t, m.SetNeighbor(b, 2, a))
	return m, a, b
}

func TestInsertOnInteriorEdgeSplitsIntoFour(t *testing.T) {
	m, a, _ := buildSquare(t)

	_, err := Insert(m, locate.Result{Kind: locate.OnEdge2D, Simplex: a, Faces: []int{1}}, 4)
	require.NoError(t, err)
	require.Equal(t, 4, m.NumLive())
	checkSymmetry(t, m)
	checkDelaunay(t, m)

	for _, idx := range m.LiveIndices() {
		v, err := m.Vertices(idx)
		require.NoError(t, err)
		require.Contains(t, v[:], 4)
	}
}

func TestInsertOnVertexReportsDuplicate(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {2, 0}, {1, 2}}
	m := mesh2.New(pts)
	seed := m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})

	_, err := Insert(m, locate.Result{Kind: locate.OnVertex, Simplex: seed, Vertex: 1}, 1)
	require.ErrorIs(t, err, ErrDuplicatePoint)
	require.Equal(t, 1, m.NumLive())
}

func TestInsertOutsideExtendsHull(t *testing.T) {
	pts := []mgl64.Vec2{{0, 0}, {2, 0}, {1, 2}, {1, -1}}
	m := mesh2.New(pts)
	seed := m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})

	_, err := Insert(m, locate.Result{Kind: locate.Outside, Simplex: seed, Faces: []int{2}}, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumLive())
	checkSymmetry(t, m)
	checkDelaunay(t, m)
}

func TestIncrementalBuildIsDelaunay(t *testing.T) {
	pts := []mgl64.Vec2{
		{0, 0}, {4, 0}, {4, 3}, {0, 4}, {2, 2}, {1, 3}, {3, 1},
	}
	m := mesh2.New(pts)
	seed := m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})
	hint := seed

	for idx := 3; idx < len(pts); idx++ {
		loc, err := locate.Walk2D(m, hint, pts[idx])
		require.NoError(t, err)
		require.NotEqual(t, locate.OnVertex, loc.Kind)
		hint, err = Insert(m, loc, idx)
		require.NoError(t, err)
	}

	checkSymmetry(t, m)
	checkDelaunay(t, m)

	seen := make(map[int]bool)
	for _, idx := range m.LiveIndices() {
		v, err := m.Vertices(idx)
		require.NoError(t, err)
		for _, vi := range v {
			seen[vi] = true
		}
	}
	require.Len(t, seen, len(pts))
}
