package hilbert

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Order2D returns a permutation of [0, len(points)) such that consecutive
// indices in the result reference spatially nearby points, by sorting on
// each point's index along a Hilbert curve covering the points' bounding
// box. The sort is stable: points that land on the same Hilbert cell keep
// their original relative order.
func Order2D(points []mgl64.Vec2) []int {
	n := len(points)
	order := identity(n)
	if n == 0 {
		return order
	}

	box := boundingBox2D(points)

	bits := chooseBits(n, 2)
	keys := make([]uint64, n)
	for i, p := range points {
		gx := gridCoord(p.X(), box.Min.X(), box.Max.X(), bits)
		gy := gridCoord(p.Y(), box.Min.Y(), box.Max.Y(), bits)
		keys[i] = hilbertIndex([]uint32{gx, gy}, bits)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return keys[order[i]] < keys[order[j]]
	})
	return order
}

// Order3D is Order2D's three-dimensional counterpart.
func Order3D(points []mgl64.Vec3) []int {
	n := len(points)
	order := identity(n)
	if n == 0 {
		return order
	}

	box := boundingBox3D(points)

	bits := chooseBits(n, 3)
	keys := make([]uint64, n)
	for i, p := range points {
		gx := gridCoord(p.X(), box.Min.X(), box.Max.X(), bits)
		gy := gridCoord(p.Y(), box.Min.Y(), box.Max.Y(), bits)
		gz := gridCoord(p.Z(), box.Min.Z(), box.Max.Z(), bits)
		keys[i] = hilbertIndex([]uint32{gx, gy, gz}, bits)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return keys[order[i]] < keys[order[j]]
	})
	return order
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func minMax(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
