package predicate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Orient2D returns the sign of the signed area of triangle (a,b,c): +1 if
// the points are arranged counter-clockwise, -1 if clockwise, 0 if
// collinear.
func Orient2D(a, b, c mgl64.Vec2) (int, error) {
	if !finite2(a) || !finite2(b) || !finite2(c) {
		return 0, ErrInvalidInput
	}

	m00 := a[0] - c[0]
	m01 := a[1] - c[1]
	m10 := b[0] - c[0]
	m11 := b[1] - c[1]

	det := m00*m11 - m01*m10

	detsum := math.Abs(m00*m11) + math.Abs(m01*m10)
	errbound := orient2dErrBoundA * detsum
	if det > errbound || det < -errbound {
		return sign(det), nil
	}

	return exactDet2(m00, m01, m10, m11), nil
}

// Orient3D returns the sign of the 3x3 determinant of edge vectors
// (a-d, b-d, c-d): +1 if d lies below the plane through (a,b,c) under the
// right-hand rule, -1 if above, 0 if coplanar.
func Orient3D(a, b, c, d mgl64.Vec3) (int, error) {
	if !finite3(a) || !finite3(b) || !finite3(c) || !finite3(d) {
		return 0, ErrInvalidInput
	}

	m00, m01, m02 := a[0]-d[0], a[1]-d[1], a[2]-d[2]
	m10, m11, m12 := b[0]-d[0], b[1]-d[1], b[2]-d[2]
	m20, m21, m22 := c[0]-d[0], c[1]-d[1], c[2]-d[2]

	minor0 := m11*m22 - m12*m21
	minor1 := m10*m22 - m12*m20
	minor2 := m10*m21 - m11*m20

	det := m00*minor0 - m01*minor1 + m02*minor2

	detsum := math.Abs(m00*minor0) + math.Abs(m01*minor1) + math.Abs(m02*minor2)
	errbound := orient3dErrBoundA * detsum
	if det > errbound || det < -errbound {
		return sign(det), nil
	}

	return exactDet3(m00, m01, m02, m10, m11, m12, m20, m21, m22), nil
}
