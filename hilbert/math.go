package hilbert

import "math"

func nthRoot(x float64, n int) float64 {
	if n <= 0 {
		return x
	}
	return math.Pow(x, 1.0/float64(n))
}

func ceilLog2(x float64) int {
	if x <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(x)))
}
