// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Method selects the uniform→normal transform.
type Method int

const (
	// InverseCDF maps each uniform through the standard normal quantile.
	// One uniform per normal, order-preserving — the right choice for
	// quasi-random input, where it keeps the low-discrepancy structure.
	InverseCDF Method = iota

	// BoxMuller maps pairs of uniforms to pairs of normals. Slightly
	// cheaper per variate for pseudo-random input; a trailing odd
	// coordinate falls back to the inverse CDF.
	BoxMuller
)

// uniformFloor keeps uniforms strictly inside (0,1) before the quantile,
// so an exact 0 (the first Sobol point) cannot produce -Inf.
const uniformFloor = 0x1p-53

// Gaussian converts rows of uniforms in [0,1) into standard normal
// variates of the same shape. The input is not modified.
func Gaussian(u [][]float64, method Method) ([][]float64, error) {
	if method != InverseCDF && method != BoxMuller {
		return nil, ErrBadMethod
	}
	out := make([][]float64, len(u))
	for i, row := range u {
		z := make([]float64, len(row))
		switch method {
		case InverseCDF:
			for j, v := range row {
				z[j] = Quantile(v)
			}
		case BoxMuller:
			boxMullerRow(row, z)
		}
		out[i] = z
	}
	return out, nil
}

// Quantile is the clamped standard normal inverse CDF: uniforms are kept
// strictly inside (0,1), so u = 0 maps to a large negative value rather
// than -Inf.
func Quantile(u float64) float64 {
	if u < uniformFloor {
		u = uniformFloor
	} else if u > 1-uniformFloor {
		u = 1 - uniformFloor
	}
	return distuv.UnitNormal.Quantile(u)
}

// boxMullerRow fills z with normals from uniform pairs in row.
func boxMullerRow(row, z []float64) {
	n := len(row)
	for j := 0; j+1 < n; j += 2 {
		u1, u2 := row[j], row[j+1]
		if u1 < uniformFloor {
			u1 = uniformFloor
		}
		r := math.Sqrt(-2 * math.Log(u1))
		s, c := math.Sincos(2 * math.Pi * u2)
		z[j] = r * c
		z[j+1] = r * s
	}
	if n%2 == 1 {
		z[n-1] = Quantile(row[n-1])
	}
}
