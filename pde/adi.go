// SPDX-License-Identifier: MIT

package pde

// Douglas dimension splitting: one multi-dimensional θ-scheme update is
// reduced to an explicit predictor over the full operator (mixed
// derivatives included) followed by one implicit tridiagonal corrector
// sweep per axis:
//
//	Y₀ = V + dt·A·V
//	(I - θ·dt·A_k) Y_k = Y_{k-1} - θ·dt·A_k·V     for each axis k
//
// Each A_k carries its axis' diffusion and drift stencil plus an equal
// share of the reaction term; the mixed terms live only in the explicit
// predictor. Splitting error is second order in dt.

type stencil3 struct{ l, c, u float64 }

// stepADI advances v backward from tb to ta on a multi-dimensional grid.
// All faces are Dirichlet (enforced at construction); face values are
// pinned at the target time before the corrector sweeps so line ends are
// known.
func (s *solver) stepADI(v []float64, ta, tb float64) error {
	dt := tb - ta
	th := s.o.Scheme.theta()
	tm := 0.5 * (ta + tb)
	nodes := s.g.Nodes()

	// Freeze per-node stencils and mixed coefficients at the midpoint.
	st := make([][]stencil3, s.dim)
	for k := range st {
		st[k] = make([]stencil3, nodes)
	}
	pairs := s.dim * (s.dim - 1) / 2
	cross := make([][]float64, pairs)
	for i := range cross {
		cross[i] = make([]float64, nodes)
	}

	mi := make([]int, s.dim)
	for k := range mi {
		mi[k] = 1
	}
	for {
		n := s.g.index(mi)
		if err := s.coeffs(tm, n); err != nil {
			return err
		}
		for k := 0; k < s.dim; k++ {
			ax := s.g.Axis(k)
			l, c, u, up := axisStencil(ax[mi[k]]-ax[mi[k]-1], ax[mi[k]+1]-ax[mi[k]],
				s.aM.At(k, k), s.mu[k])
			if up {
				s.rep.Upwinded++
				s.rep.GridTooCoarse = true
			}
			c -= s.o.Rate / float64(s.dim)
			st[k][n] = stencil3{l, c, u}
		}
		pi := 0
		for k := 0; k < s.dim; k++ {
			for l := k + 1; l < s.dim; l++ {
				cross[pi][n] = s.aM.At(k, l)
				pi++
			}
		}
		if !nextInterior(mi, s.g) {
			break
		}
	}

	// Per-axis operator applications A_k·V and the full explicit
	// predictor Y₀.
	akv := make([][]float64, s.dim)
	for k := range akv {
		akv[k] = make([]float64, nodes)
	}
	y := append([]float64(nil), v...)

	for k := range mi {
		mi[k] = 1
	}
	for {
		n := s.g.index(mi)
		sum := 0.0
		for k := 0; k < s.dim; k++ {
			sk := s.g.strides[k]
			w := st[k][n]
			akv[k][n] = w.l*v[n-sk] + w.c*v[n] + w.u*v[n+sk]
			sum += akv[k][n]
		}
		pi := 0
		for k := 0; k < s.dim; k++ {
			axk := s.g.Axis(k)
			spanK := axk[mi[k]+1] - axk[mi[k]-1]
			sk := s.g.strides[k]
			for l := k + 1; l < s.dim; l++ {
				axl := s.g.Axis(l)
				spanL := axl[mi[l]+1] - axl[mi[l]-1]
				sl := s.g.strides[l]
				d2 := (v[n+sk+sl] - v[n+sk-sl] - v[n-sk+sl] + v[n-sk-sl]) / (spanK * spanL)
				sum += 2 * cross[pi][n] * d2
				pi++
			}
		}
		y[n] = v[n] + dt*sum
		if !nextInterior(mi, s.g) {
			break
		}
	}

	s.pinFaces(y, ta)

	if th > 0 {
		for _, k := range s.order {
			if err := s.sweep(k, th, dt, y, akv[k], st[k]); err != nil {
				return err
			}
		}
	}
	copy(v, y)
	return nil
}

// sweep runs the implicit corrector for axis k: one tridiagonal solve
// per interior line, updating y in place. akv is A_k·V from the
// predictor stage; line-end Dirichlet values shift into the rhs.
func (s *solver) sweep(k int, th, dt float64, y, akv []float64, st []stencil3) error {
	nk := s.g.Len(k)
	sk := s.g.strides[k]

	return s.eachInteriorLine(k, func(base int) error {
		for i := 1; i < nk-1; i++ {
			n := base + i*sk
			w := st[n]
			s.sub[i-1] = -th * dt * w.l
			s.dia[i] = 1 - th*dt*w.c
			s.sup[i] = -th * dt * w.u
			s.rhs[i] = y[n] - th*dt*akv[n]
		}
		// Line ends are pinned Dirichlet values: move their coupling to
		// the rhs and solve the interior system only.
		s.rhs[1] += th * dt * st[base+sk].l * y[base]
		s.rhs[nk-2] += th * dt * st[base+(nk-2)*sk].u * y[base+(nk-1)*sk]

		m := nk - 2
		if err := s.ls.SolveTridiag(s.sub[1:m], s.dia[1:m+1], s.sup[1:m], s.rhs[1:m+1], s.sol[1:m+1]); err != nil {
			return err
		}
		for i := 1; i < nk-1; i++ {
			y[base+i*sk] = s.sol[i]
		}
		return nil
	})
}

// eachInteriorLine visits the base node (axis-k index 0) of every line
// whose other-axis indices are all interior.
func (s *solver) eachInteriorLine(k int, fn func(base int) error) error {
	mi := make([]int, s.dim)
	for j := range mi {
		if j != k {
			mi[j] = 1
		}
	}
	for {
		if err := fn(s.g.index(mi)); err != nil {
			return err
		}
		done := true
		for j := s.dim - 1; j >= 0; j-- {
			if j == k {
				continue
			}
			mi[j]++
			if mi[j] <= s.g.Len(j)-2 {
				done = false
				break
			}
			mi[j] = 1
		}
		if done {
			return nil
		}
	}
}

// pinFaces sets every face node to its Dirichlet value at time t.
func (s *solver) pinFaces(v []float64, t float64) {
	for k := 0; k < s.dim; k++ {
		lo, hi := s.bcs[k].Lower, s.bcs[k].Upper
		s.eachFaceNode(k, 0, func(n int) {
			s.g.Coord(n, s.x)
			v[n] = lo.Value(t, s.x)
		})
		s.eachFaceNode(k, s.g.Len(k)-1, func(n int) {
			s.g.Coord(n, s.x)
			v[n] = hi.Value(t, s.x)
		})
	}
}
