package delaunay

import (
	"fmt"

	"github.com/akmonengine/delaunay/mesh2"
	"github.com/akmonengine/delaunay/mesh3"
	"github.com/akmonengine/delaunay/predicate"
	"github.com/go-gl/mathgl/mgl64"
)

// seedTriangle scans order (indices into points, already Hilbert-sorted)
// for the first three points that are not collinear, builds a single
// positively-oriented seed triangle from them, and returns the indices
// in order that were not consumed by the seed (to be inserted normally
// afterward) alongside the seed triangle's index in m.
func seedTriangle(m *mesh2.Mesh, points []mgl64.Vec2, order []int) (seedTri int, pending []int, err error) {
	if len(order) < 3 {
		return 0, nil, ErrInsufficientInput
	}

	a, b := order[0], order[1]
	for i := 2; i < len(order); i++ {
		c := order[i]
		sign, serr := predicate.Orient2D(points[a], points[b], points[c])
		if serr != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrInvalidInput, serr)
		}
		if sign == 0 {
			continue
		}
		if sign < 0 {
			b, c = c, b
		}
		pending = make([]int, 0, len(order)-3)
		pending = append(pending, order[2:i]...)
		pending = append(pending, order[i+1:]...)
		seedTri = m.Alloc([3]int{a, b, c}, [3]int{mesh2.Outside, mesh2.Outside, mesh2.Outside})
		return seedTri, pending, nil
	}
	return 0, nil, ErrInsufficientInput
}

// seedTetrahedron is seedTriangle one dimension up: it finds the first
// three non-collinear points to fix a seed plane, then the first
// subsequent point not coplanar with it, builds a single
// positively-oriented seed tetrahedron, and returns the unconsumed
// indices to insert normally afterward.
func seedTetrahedron(m *mesh3.Mesh, points []mgl64.Vec3, order []int) (seedTet int, pending []int, err error) {
	if len(order) < 4 {
		return 0, nil, ErrInsufficientInput
	}

	planeEnd := -1
	var a, b, c int
	for i := 2; i < len(order); i++ {
		a, b, c = order[0], order[1], order[i]
		collinear, cerr := isCollinear3(points[a], points[b], points[c])
		if cerr != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrInvalidInput, cerr)
		}
		if !collinear {
			planeEnd = i
			break
		}
	}
	if planeEnd < 0 {
		return 0, nil, ErrInsufficientInput
	}

	for j := planeEnd + 1; j < len(order); j++ {
		d := order[j]
		sign, serr := predicate.Orient3D(points[a], points[b], points[c], points[d])
		if serr != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrInvalidInput, serr)
		}
		if sign == 0 {
			continue
		}
		va, vb, vc, vd := a, b, c, d
		if sign < 0 {
			vb, vc = vc, vb
		}

		pending = make([]int, 0, len(order)-4)
		for k, idx := range order {
			if k == 0 || k == 1 || k == planeEnd || k == j {
				continue
			}
			pending = append(pending, idx)
		}
		seedTet = m.Alloc([4]int{va, vb, vc, vd}, [4]int{mesh3.Outside, mesh3.Outside, mesh3.Outside, mesh3.Outside})
		return seedTet, pending, nil
	}
	return 0, nil, ErrInsufficientInput
}

// isCollinear3 reports whether a, b, c lie on a common line, tested via
// the 2D orientation of each coordinate-plane projection: three points
// are collinear in 3D iff their projections onto the xy, xz, and yz
// planes are all collinear.
func isCollinear3(a, b, c mgl64.Vec3) (bool, error) {
	xy, err := predicate.Orient2D(mgl64.Vec2{a.X(), a.Y()}, mgl64.Vec2{b.X(), b.Y()}, mgl64.Vec2{c.X(), c.Y()})
	if err != nil {
		return false, err
	}
	xz, err := predicate.Orient2D(mgl64.Vec2{a.X(), a.Z()}, mgl64.Vec2{b.X(), b.Z()}, mgl64.Vec2{c.X(), c.Z()})
	if err != nil {
		return false, err
	}
	yz, err := predicate.Orient2D(mgl64.Vec2{a.Y(), a.Z()}, mgl64.Vec2{b.Y(), b.Z()}, mgl64.Vec2{c.Y(), c.Z()})
	if err != nil {
		return false, err
	}
	return xy == 0 && xz == 0 && yz == 0, nil
}
