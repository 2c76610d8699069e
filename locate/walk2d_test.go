package locate

import (
	"math"
	"testing"

	"github.com/akmonengine/delaunay/mesh2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// buildSquare returns a two-triangle mesh over the unit square:
// triangle A = (0,1,2), triangle B = (0,2,3), sharing the diagonal 0-2.
func buildSquare(t *testing.T) (*mesh2.Mesh, int, int) {
	t.Helper()
	pts := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	m := mesh2.New(pts)
	a := m.Alloc([3]int{0, 1, 2}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})
	b := m.Alloc([3]int{0, 2, 3}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})
	require.NoError(t, m.SetNeighbor(a, 1, b))
	require.NoError(t, m.SetNeighbor(b, 2, a))
	return m, a, b
}

func TestWalk2DInside(t *testing.T) {
	m, a, _ := buildSquare(t)
	res, err := Walk2D(m, a, mgl64.Vec2{0.6667, 0.3333})
	require.NoError(t, err)
	require.Equal(t, Inside, res.Kind)
	require.Equal(t, a, res.Simplex)
}

func TestWalk2DOnEdge(t *testing.T) {
	m, a, _ := buildSquare(t)
	res, err := Walk2D(m, a, mgl64.Vec2{1, 0.5})
	require.NoError(t, err)
	require.Equal(t, OnEdge2D, res.Kind)
	require.Equal(t, []int{0}, res.Faces)
}

func TestWalk2DOnVertex(t *testing.T) {
	m, a, _ := buildSquare(t)
	res, err := Walk2D(m, a, mgl64.Vec2{0, 0})
	require.NoError(t, err)
	require.Equal(t, OnVertex, res.Kind)
	require.Equal(t, 0, res.Vertex)
}

func TestWalk2DOutside(t *testing.T) {
	m, a, _ := buildSquare(t)
	res, err := Walk2D(m, a, mgl64.Vec2{2, 2})
	require.NoError(t, err)
	require.Equal(t, Outside, res.Kind)
	require.Equal(t, a, res.Simplex)
	require.Equal(t, []int{0}, res.Faces)
}

func TestWalk2DCrossesIntoNeighbor(t *testing.T) {
	m, a, b := buildSquare(t)
	// Centroid of triangle B, starting the walk from A.
	res, err := Walk2D(m, a, mgl64.Vec2{0.3333, 0.6667})
	require.NoError(t, err)
	require.Equal(t, Inside, res.Kind)
	require.Equal(t, b, res.Simplex)
}

func TestWalk2DFreedStartTreatedAsAnyLive(t *testing.T) {
	m, a, _ := buildSquare(t)
	res, err := Walk2D(m, 999, mgl64.Vec2{0.6667, 0.3333})
	require.NoError(t, err)
	require.Equal(t, Inside, res.Kind)
	require.Equal(t, a, res.Simplex)
}

func TestWalk2DNonFiniteCoordinate(t *testing.T) {
	m, a, _ := buildSquare(t)
	_, err := Walk2D(m, a, mgl64.Vec2{math.NaN(), 0})
	require.ErrorIs(t, err, ErrNonFiniteCoordinate)
}

func TestWalk2DDegenerateMeshWhenNoLiveSimplices(t *testing.T) {
	m, a, b := buildSquare(t)
	require.NoError(t, m.Free(a))
	require.NoError(t, m.Free(b))
	_, err := Walk2D(m, 999, mgl64.Vec2{0.5, 0.5})
	require.ErrorIs(t, err, ErrDegenerateMesh)
}
