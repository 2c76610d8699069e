package insert3

import (
	"testing"

	"github.com/akmonengine/delaunay/locate"
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func indexOf4Test(s []int, target int) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return -1
}

func checkSymmetry3(t *testing.T, m *mesh3.Mesh) {
	t.Helper()
	for _, idx := range m.LiveIndices() {
		tet, err := m.Tetrahedron(idx)
		require.NoError(t, err)
		for local, nb := range tet.Neighbors {
			if nb == mesh3.Outside {
				continue
			}
			nbTet, err := m.Tetrahedron(nb)
			require.NoError(t, err)
			back := indexOf4Test(nbTet.Neighbors[:], idx)
			require.GreaterOrEqualf(t, back, 0, "tetrahedron %d has no backlink to %d", nb, idx)

			shared := 0
			for _, v := range tet.Vertices {
				if v != tet.Vertices[local] && indexOf4Test(nbTet.Vertices[:], v) >= 0 {
					shared++
				}
			}
			require.Equal(t, 3, shared, "tetrahedra %d and %d do not share a face", idx, nb)
		}
	}
}

func checkDelaunay3(t *testing.T, m *mesh3.Mesh) {
	t.Helper()
	for _, idx := range m.LiveIndices() {
		tet, err := m.Tetrahedron(idx)
		require.NoError(t, err)
		a := m.Vertex(tet.Vertices[0])
		b := m.Vertex(tet.Vertices[1])
		c := m.Vertex(tet.Vertices[2])
		d := m.Vertex(tet.Vertices[3])
		for _, nb := range tet.Neighbors {
			if nb == mesh3.Outside {
				continue
			}
			nbTet, err := m.Tetrahedron(nb)
			require.NoError(t, err)
			back := indexOf4Test(nbTet.Neighbors[:], idx)
			require.GreaterOrEqual(t, back, 0)
			q := nbTet.Vertices[back]
			sign, err := predicate.InSphere(a, b, c, d, m.Vertex(q))
			require.NoError(t, err)
			require.LessOrEqualf(t, sign, 0, "tetrahedron %d circumsphere contains vertex %d", idx, q)
		}
	}
}

// buildBipyramid3 returns a 2-tetrahedron mesh over a base triangle
// with one apex above and one below, plus extra points that have not
// yet been inserted for tests that need them.
func buildBipyramid3(t *testing.T, extra ...mgl64.Vec3) (m *mesh3.Mesh, t1, t2 int) {
	t.Helper()
	pts := append([]mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, -1},
	}, extra...)
	m = mesh3.New(pts)
	t1 = m.Alloc([4]int{0, 2, 1, 3}, [4]int{mesh3.Outside, mesh3.Outside, mesh3.Outside, mesh3.Outside})
	t2 = m.Alloc([4]int{0, 1, 2, 4}, [4]int{mesh3.Outside, mesh3.Outside, mesh3.Outside, t1})
	require.NoError(t, m.SetNeighbor(t1, 3, t2))
	return m, t1, t2
}

func TestInsertInsideSingleTetAllFacesSplit(t *testing.T) {
	m, t1, _ := buildBipyramid3(t, mgl64.Vec3{0.25, 0.25, 0.25})
	before := m.NumLive()

	hint, err := Insert(m, locate.Result{Kind: locate.Inside, Simplex: t1}, 5)
	require.NoError(t, err)
	require.True(t, m.IsLive(hint))
	require.Greater(t, m.NumLive(), before)
	checkSymmetry3(t, m)
	checkDelaunay3(t, m)

	found := false
	for _, idx := range m.LiveIndices() {
		v, err := m.Vertices(idx)
		require.NoError(t, err)
		if indexOf4Test(v[:], 5) >= 0 {
			found = true
		}
	}
	require.True(t, found)
}

func TestInsertOnVertexReportsDuplicate(t *testing.T) {
	m, t1, _ := buildBipyramid3(t)
	before := m.NumLive()

	_, err := Insert(m, locate.Result{Kind: locate.OnVertex, Simplex: t1, Vertex: 1}, 1)
	require.ErrorIs(t, err, ErrDuplicatePoint)
	require.Equal(t, before, m.NumLive())
}

func TestInsertOutsideExtendsHull(t *testing.T) {
	// Point 5 lies far beyond the face opposite vertex 0 in t1 (the face
	// {1,2,3}), outside the bipyramid's hull.
	m, t1, _ := buildBipyramid3(t, mgl64.Vec3{2, 0, 0})
	before := m.NumLive()

	hint, err := Insert(m, locate.Result{Kind: locate.Outside, Simplex: t1, Faces: []int{0}}, 5)
	require.NoError(t, err)
	require.True(t, m.IsLive(hint))
	require.Greater(t, m.NumLive(), before)
	checkSymmetry3(t, m)
	checkDelaunay3(t, m)
}

func TestIncrementalBuild3DIsDelaunay(t *testing.T) {
	pts := []mgl64.Vec3{
		{0, 0, 0}, {4, 0, 0}, {0, 4, 0}, {0, 0, 4},
		{1, 1, 1}, {2, 1, 0.5}, {1, 2, 3}, {3, 3, 1}, {0.5, 0.5, 0.2},
	}
	m := mesh3.New(pts)
	seed := m.Alloc([4]int{0, 2, 1, 3}, [4]int{mesh3.Outside, mesh3.Outside, mesh3.Outside, mesh3.Outside})
	hint := seed

	for idx := 4; idx < len(pts); idx++ {
		loc, err := locate.Walk3D(m, hint, pts[idx])
		require.NoError(t, err)
		require.NotEqual(t, locate.OnVertex, loc.Kind)
		hint, err = Insert(m, loc, idx)
		require.NoError(t, err)
	}

	checkSymmetry3(t, m)
	checkDelaunay3(t, m)

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
