package predicate

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// InCircle returns the sign of the in-circle test of d against the circle
// through a, b, c. The caller must supply (a,b,c) positively oriented
// (Orient2D(a,b,c) > 0): +1 if d lies strictly inside the circumcircle, -1
// strictly outside, 0 exactly on it.
//
// Computed as the determinant of the paraboloid lift of a,b,c,d, the
// standard reduction of the in-circle test to a single determinant sign
// (see e.g. the lifting-map formulation used throughout computational
// geometry literature).
func InCircle(a, b, c, d mgl64.Vec2) (int, error) {
	if !finite2(a) || !finite2(b) || !finite2(c) || !finite2(d) {
		return 0, ErrInvalidInput
	}

	m00, m01 := a[0]-d[0], a[1]-d[1]
	m02 := m00*m00 + m01*m01
	m10, m11 := b[0]-d[0], b[1]-d[1]
	m12 := m10*m10 + m11*m11
	m20, m21 := c[0]-d[0], c[1]-d[1]
	m22 := m20*m20 + m21*m21

	minor0 := m11*m22 - m12*m21
	minor1 := m10*m22 - m12*m20
	minor2 := m10*m21 - m11*m20

	det := m00*minor0 - m01*minor1 + m02*minor2

	detsum := math.Abs(m00*minor0) + math.Abs(m01*minor1) + math.Abs(m02*minor2)
	errbound := inCircleErrBoundA * detsum
	if det > errbound || det < -errbound {
		return sign(det), nil
	}

	return exactDet3(m00, m01, m02, m10, m11, m12, m20, m21, m22), nil
}

// InSphere returns the sign of the in-sphere test of e against the sphere
// through a, b, c, d. The caller must supply (a,b,c,d) positively oriented
// (Orient3D(a,b,c,d) > 0): +1 if e lies strictly inside the circumsphere,
// -1 strictly outside, 0 exactly on it.
func InSphere(a, b, c, d, e mgl64.Vec3) (int, error) {
	if !finite3(a) || !finite3(b) || !finite3(c) || !finite3(d) || !finite3(e) {
		return 0, ErrInvalidInput
	}

	row := func(p mgl64.Vec3) (x, y, z, w float64) {
		x, y, z = p[0]-e[0], p[1]-e[1], p[2]-e[2]
		w = x*x + y*y + z*z
		return
	}

	a0, a1, a2, a3 := row(a)
	b0, b1, b2, b3 := row(b)
	c0, c1, c2, c3 := row(c)
	d0, d1, d2, d3 := row(d)

	cof0 := det3Fast(b1, b2, b3, c1, c2, c3, d1, d2, d3)
	cof1 := det3Fast(b0, b2, b3, c0, c2, c3, d0, d2, d3)
	cof2 := det3Fast(b0, b1, b3, c0, c1, c3, d0, d1, d3)
	cof3 := det3Fast(b0, b1, b2, c0, c1, c2, d0, d1, d2)

	det := a0*cof0 - a1*cof1 + a2*cof2 - a3*cof3

	detsum := math.Abs(a0*cof0) + math.Abs(a1*cof1) + math.Abs(a2*cof2) + math.Abs(a3*cof3)
	errbound := inSphereErrBoundA * detsum
	if det > errbound || det < -errbound {
		return sign(det), nil
	}

	return exactDet4(
		a0, a1, a2, a3,
		b0, b1, b2, b3,
		c0, c1, c2, c3,
		d0, d1, d2, d3,
	), nil
}

func det3Fast(
	a0, a1, a2,
	b0, b1, b2,
	c0, c1, c2 float64,
) float64 {
	minor0 := b1*c2 - b2*c1
	minor1 := b0*c2 - b2*c0
	minor2 := b0*c1 - b1*c0
	return a0*minor0 - a1*minor1 + a2*minor2
}
