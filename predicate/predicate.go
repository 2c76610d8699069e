package predicate

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidInput is returned when a coordinate passed to a predicate is not
// finite (NaN or +/-Inf).
var ErrInvalidInput = errors.New("predicate: non-finite coordinate")

// epsilon is half of the float64 machine epsilon, i.e. the unit roundoff
// used to derive the Shewchuk-style forward error bounds below.
const epsilon = 1.1102230246251565e-16

// Error bound constants from Shewchuk's adaptive-precision geometric
// predicates (Routines for Arbitrary Precision Floating-point Arithmetic
// and Fast Robust Geometric Predicates, 1997), used to decide whether the
// float64 fast path is conclusive or whether the exact fallback is needed.
const (
	orient2dErrBoundA = (3.0 + 16.0*epsilon) * epsilon
	orient3dErrBoundA = (7.0 + 56.0*epsilon) * epsilon
	inCircleErrBoundA = (10.0 + 96.0*epsilon) * epsilon
	inSphereErrBoundA = (16.0 + 224.0*epsilon) * epsilon
)

func finite2(v mgl64.Vec2) bool {
	return !math.IsNaN(float64(v[0])) && !math.IsInf(float64(v[0]), 0) &&
		!math.IsNaN(float64(v[1])) && !math.IsInf(float64(v[1]), 0)
}

func finite3(v mgl64.Vec3) bool {
	return !math.IsNaN(float64(v[0])) && !math.IsInf(float64(v[0]), 0) &&
		!math.IsNaN(float64(v[1])) && !math.IsInf(float64(v[1]), 0) &&
		!math.IsNaN(float64(v[2])) && !math.IsInf(float64(v[2]), 0)
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
