package hilbert

import "github.com/go-gl/mathgl/mgl64"

// BoundingBox2D is the axis-aligned extent of a 2D point set, the
// region Order2D maps onto the Hilbert grid.
type BoundingBox2D struct {
	Min, Max mgl64.Vec2
}

// ContainsPoint reports whether point lies within the box, inclusive
// of its boundary.
func (b BoundingBox2D) ContainsPoint(p mgl64.Vec2) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

func boundingBox2D(points []mgl64.Vec2) BoundingBox2D {
	b := BoundingBox2D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		x0, x1 := minMax(b.Min.X(), b.Max.X(), p.X())
		y0, y1 := minMax(b.Min.Y(), b.Max.Y(), p.Y())
		b.Min, b.Max = mgl64.Vec2{x0, y0}, mgl64.Vec2{x1, y1}
	}
	return b
}

// BoundingBox3D is BoundingBox2D's three-dimensional counterpart, the
// region Order3D maps onto the Hilbert grid.
type BoundingBox3D struct {
	Min, Max mgl64.Vec3
}

// ContainsPoint reports whether point lies within the box, inclusive
// of its boundary.
func (b BoundingBox3D) ContainsPoint(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

func boundingBox3D(points []mgl64.Vec3) BoundingBox3D {
	b := BoundingBox3D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		x0, x1 := minMax(b.Min.X(), b.Max.X(), p.X())
		y0, y1 := minMax(b.Min.Y(), b.Max.Y(), p.Y())
		z0, z1 := minMax(b.Min.Z(), b.Max.Z(), p.Z())
		b.Min, b.Max = mgl64.Vec3{x0, y0, z0}, mgl64.Vec3{x1, y1, z1}
	}
	return b
}
