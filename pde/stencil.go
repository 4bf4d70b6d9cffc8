// SPDX-License-Identifier: MIT

package pde

// axisStencil returns the three-point operator weights (l, c, u) for one
// interior node on one axis, so that the axis contribution to L·V is
// l·V[i-1] + c·V[i] + u·V[i+1]. hm and hp are the spacings to the left
// and right neighbours, a the diffusion coefficient (½σ² along this
// axis), b the drift.
//
// Diffusion uses the second-order non-uniform central stencil. Drift is
// central unless the cell Péclet number |b|·h/a exceeds 2, where the
// central first-derivative stencil turns oscillatory; then the stencil
// switches to first-order one-sided against the flow.
func axisStencil(hm, hp, a, b float64) (l, c, u float64, upwinded bool) {
	s := hm + hp
	l = 2 * a / (hm * s)
	u = 2 * a / (hp * s)
	c = -2 * a / (hm * hp)

	pe := 3.0 // forces upwind when a == 0
	if a > 0 {
		h := hm
		if hp > h {
			h = hp
		}
		if b < 0 {
			pe = -b * h / a
		} else {
			pe = b * h / a
		}
	}
	switch {
	case pe <= 2:
		l -= b * hp / (hm * s)
		c += b * (hp - hm) / (hm * hp)
		u += b * hm / (hp * s)
	case b > 0:
		u += b / hp
		c -= b / hp
		upwinded = true
	case b < 0:
		c += b / hm
		l -= b / hm
		upwinded = true
	}
	return l, c, u, upwinded
}

// boundaryRow returns the matrix row (diag, off) and right-hand side for
// a boundary node, folding Neumann/Robin one-sided stencils into the
// system. h is the spacing to the adjacent interior node; lower selects
// the face orientation. The off coefficient applies to the adjacent
// interior node.
func boundaryRow(b Boundary, t float64, x []float64, h float64, lower bool) (diag, off, rhs float64) {
	switch b.Kind {
	case Neumann:
		if lower {
			return -1 / h, 1 / h, b.Value(t, x)
		}
		return 1 / h, -1 / h, b.Value(t, x)
	case Robin:
		if lower {
			return b.Alpha - b.Beta/h, b.Beta / h, b.Value(t, x)
		}
		return b.Alpha + b.Beta/h, -b.Beta / h, b.Value(t, x)
	default: // Dirichlet
		return 1, 0, b.Value(t, x)
	}
}
