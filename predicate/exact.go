package predicate

import "math/big"

// exactPrec is the working precision (in bits) used for the exact fallback.
// It is generous relative to the 53-bit mantissa of the inputs: every
// determinant evaluated here is a bounded sum of a handful of products of
// at most four float64 values, so this comfortably avoids any rounding
// in the fallback path for the coordinate ranges this module targets.
const exactPrec = 4096

func big64(x float64) *big.Float {
	return new(big.Float).SetPrec(exactPrec).SetFloat64(x)
}

func bigMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Mul(a, b)
}

func bigSub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Sub(a, b)
}

func bigAdd(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(exactPrec).Add(a, b)
}

// exactDet2 returns the exact sign of the 2x2 determinant
//
//	| a  b |
//	| c  d |
func exactDet2(a, b, c, d float64) int {
	ad := bigMul(big64(a), big64(d))
	bc := bigMul(big64(b), big64(c))
	return bigSub(ad, bc).Sign()
}

// exactDet3 returns the exact sign of the 3x3 determinant with rows
// (a0,a1,a2), (b0,b1,b2), (c0,c1,c2) expanded along the first row.
func exactDet3(a0, a1, a2, b0, b1, b2, c0, c1, c2 float64) int {
	m00 := bigMul(big64(b1), big64(c2))
	m01 := bigMul(big64(b2), big64(c1))
	minor0 := bigSub(m00, m01)

	m10 := bigMul(big64(b0), big64(c2))
	m11 := bigMul(big64(b2), big64(c0))
	minor1 := bigSub(m10, m11)

	m20 := bigMul(big64(b0), big64(c1))
	m21 := bigMul(big64(b1), big64(c0))
	minor2 := bigSub(m20, m21)

	t0 := bigMul(big64(a0), minor0)
	t1 := bigMul(big64(a1), minor1)
	t2 := bigMul(big64(a2), minor2)

	return bigAdd(bigSub(t0, t1), t2).Sign()
}

// exactDet4 returns the exact sign of the 4x4 determinant with the given
// rows, expanded along the first row via 3x3 cofactors.
func exactDet4(
	a0, a1, a2, a3,
	b0, b1, b2, b3,
	c0, c1, c2, c3,
	d0, d1, d2, d3 float64,
) int {
	cof := func(skip int) *big.Float {
		cols := [4][3]float64{}
		rows := [3][4]float64{{b0, b1, b2, b3}, {c0, c1, c2, c3}, {d0, d1, d2, d3}}
		k := 0
		for j := 0; j < 4; j++ {
			if j == skip {
				continue
			}
			for i := 0; i < 3; i++ {
				cols[k][i] = rows[i][j]
			}
			k++
		}
		return bigDet3Cols(cols[0], cols[1], cols[2])
	}

	t0 := bigMul(big64(a0), cof(0))
	t1 := bigMul(big64(a1), cof(1))
	t2 := bigMul(big64(a2), cof(2))
	t3 := bigMul(big64(a3), cof(3))

	// signs alternate: a0*M0 - a1*M1 + a2*M2 - a3*M3
	acc := bigSub(t0, t1)
	acc = bigAdd(acc, t2)
	acc = bigSub(acc, t3)
	return acc.Sign()
}

// bigDet3Cols returns the exact 3x3 determinant of the matrix whose three
// columns are c0, c1, c2 (each a column of 3 values), expanded along the
// first column.
func bigDet3Cols(c0, c1, c2 [3]float64) *big.Float {
	m00 := bigMul(big64(c1[1]), big64(c2[2]))
	m01 := bigMul(big64(c1[2]), big64(c2[1]))
	minor0 := bigSub(m00, m01)

	m10 := bigMul(big64(c1[0]), big64(c2[2]))
	m11 := bigMul(big64(c1[2]), big64(c2[0]))
	minor1 := bigSub(m10, m11)

	m20 := bigMul(big64(c1[0]), big64(c2[1]))
	m21 := bigMul(big64(c1[1]), big64(c2[0]))
	minor2 := bigSub(m20, m21)

	t0 := bigMul(big64(c0[0]), minor0)
	t1 := bigMul(big64(c0[1]), minor1)
	t2 := bigMul(big64(c0[2]), minor2)

	return bigAdd(bigSub(t0, t1), t2)
}
