package hilbert

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func isPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	require.Len(t, order, n)
	seen := make([]bool, n)
	for _, idx := range order {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
		require.False(t, seen[idx], "index %d appears twice", idx)
		seen[idx] = true
	}
}

func TestOrder2DIsPermutation(t *testing.T) {
	points := []mgl64.Vec2{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}, {2, 2}, {-1, 3},
	}
	order := Order2D(points)
	isPermutation(t, order, len(points))
}

func TestOrder2DEmpty(t *testing.T) {
	require.Empty(t, Order2D(nil))
}

func TestOrder2DDegenerateAxis(t *testing.T) {
	// All points share the same Y coordinate: the Y axis collapses to a
	// single grid cell but the ordering must still be a valid permutation.
	points := []mgl64.Vec2{
		{0, 5}, {1, 5}, {2, 5}, {3, 5},
	}
	order := Order2D(points)
	isPermutation(t, order, len(points))
}

func TestOrder2DAllEqualIsStableAndArbitrary(t *testing.T) {
	points := []mgl64.Vec2{{1, 1}, {1, 1}, {1, 1}}
	order := Order2D(points)
	isPermutation(t, order, len(points))
	// All keys are identical, so stability must preserve input order.
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestOrder2DLocality(t *testing.T) {
	// A point far from a tight cluster must land at one end of the Hilbert
	// order, not interleaved among the cluster.
	var points []mgl64.Vec2
	for i := 0; i < 20; i++ {
		points = append(points, mgl64.Vec2{float64(i) * 0.01, float64(i) * 0.01})
	}
	farIndex := len(points)
	points = append(points, mgl64.Vec2{1000, 1000})

	order := Order2D(points)
	isPermutation(t, order, len(points))

	farPos := -1
	for i, idx := range order {
		if idx == farIndex {
			farPos = i
			break
		}
	}
	require.True(t, farPos == 0 || farPos == len(order)-1,
		"far point landed inside the cluster at position %d", farPos)
}

func TestOrder3DIsPermutation(t *testing.T) {
	points := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 1}, {0.5, 0.5, 0.5}, {-2, 3, -1},
	}
	order := Order3D(points)
	isPermutation(t, order, len(points))
}

func TestOrder3DDegenerateAxis(t *testing.T) {
	points := []mgl64.Vec3{
		{0, 0, 2}, {1, 1, 2}, {2, 2, 2}, {-1, 0.5, 2},
	}
	order := Order3D(points)
	isPermutation(t, order, len(points))
}

func TestChooseBitsWithinBudget(t *testing.T) {
	require.LessOrEqual(t, chooseBits(1_000_000, 2)*2, 64)
	require.LessOrEqual(t, chooseBits(1_000_000, 3)*3, 64)
	require.GreaterOrEqual(t, chooseBits(1, 2), 1)
}
