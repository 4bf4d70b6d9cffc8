// SPDX-License-Identifier: MIT

package bs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Vanilla describes one European option under generalized Black-Scholes
// dynamics: Rate discounts, Carry is the cost of carry b driving the
// forward F = S·e^{bT}. Carry = Rate prices a non-dividend stock,
// Carry = Rate - q a continuous dividend yield q, Carry = 0 an option on
// a future (Black-76). The zero value is not useful; fill every field.
type Vanilla struct {
	Strike float64
	Expiry float64 // time to expiry in years
	Rate   float64 // continuously compounded discount rate
	Carry  float64 // cost of carry b
	Vol    float64
	Call   bool
}

// payoff is the intrinsic value at the given (possibly discounted) spot
// and strike.
func (v Vanilla) payoff(s, k float64) float64 {
	if v.Call {
		return math.Max(s-k, 0)
	}
	return math.Max(k-s, 0)
}

// carryFactor is e^{(b-r)T}, the factor turning spot into discounted
// forward: S·carryFactor = e^{-rT}·F.
func (v Vanilla) carryFactor() float64 {
	return math.Exp((v.Carry - v.Rate) * v.Expiry)
}

// degenerate reports whether the contract has no optionality left and, if
// so, its value: expired contracts pay intrinsic, zero-vol contracts pay
// the discounted intrinsic of the forward.
func (v Vanilla) degenerate(s float64) (float64, bool) {
	if v.Expiry <= 0 {
		return v.payoff(s, v.Strike), true
	}
	if v.Vol <= 0 {
		return v.payoff(s*v.carryFactor(), v.Strike*math.Exp(-v.Rate*v.Expiry)), true
	}
	return 0, false
}

func (v Vanilla) d1d2(s float64) (float64, float64) {
	sv := v.Vol * math.Sqrt(v.Expiry)
	d1 := (math.Log(s/v.Strike) + (v.Carry+0.5*v.Vol*v.Vol)*v.Expiry) / sv
	return d1, d1 - sv
}

// Price returns the generalized Black-Scholes value at spot s.
func (v Vanilla) Price(s float64) float64 {
	if p, ok := v.degenerate(s); ok {
		return p
	}
	d1, d2 := v.d1d2(s)
	cf := v.carryFactor()
	disc := v.Strike * math.Exp(-v.Rate*v.Expiry)
	if v.Call {
		return s*cf*distuv.UnitNormal.CDF(d1) - disc*distuv.UnitNormal.CDF(d2)
	}
	return disc*distuv.UnitNormal.CDF(-d2) - s*cf*distuv.UnitNormal.CDF(-d1)
}

// Delta returns ∂V/∂S.
func (v Vanilla) Delta(s float64) float64 {
	if v.Expiry <= 0 {
		if v.payoff(s, v.Strike) > 0 {
			if v.Call {
				return 1
			}
			return -1
		}
		return 0
	}
	cf := v.carryFactor()
	if v.Vol <= 0 {
		if v.payoff(s*cf, v.Strike*math.Exp(-v.Rate*v.Expiry)) > 0 {
			if v.Call {
				return cf
			}
			return -cf
		}
		return 0
	}
	d1, _ := v.d1d2(s)
	if v.Call {
		return cf * distuv.UnitNormal.CDF(d1)
	}
	return cf * (distuv.UnitNormal.CDF(d1) - 1)
}

// Gamma returns ∂²V/∂S², identical for calls and puts.
func (v Vanilla) Gamma(s float64) float64 {
	if _, ok := v.degenerate(s); ok {
		return 0
	}
	d1, _ := v.d1d2(s)
	return v.carryFactor() * distuv.UnitNormal.Prob(d1) / (s * v.Vol * math.Sqrt(v.Expiry))
}

// Vega returns ∂V/∂σ, identical for calls and puts.
func (v Vanilla) Vega(s float64) float64 {
	if _, ok := v.degenerate(s); ok {
		return 0
	}
	d1, _ := v.d1d2(s)
	return s * v.carryFactor() * distuv.UnitNormal.Prob(d1) * math.Sqrt(v.Expiry)
}

// Theta returns the calendar-time derivative ∂V/∂t.
func (v Vanilla) Theta(s float64) float64 {
	if _, ok := v.degenerate(s); ok {
		return 0
	}
	d1, d2 := v.d1d2(s)
	cf := v.carryFactor()
	decay := -s * cf * distuv.UnitNormal.Prob(d1) * v.Vol / (2 * math.Sqrt(v.Expiry))
	drift := (v.Carry - v.Rate) * s * cf
	disc := v.Rate * v.Strike * math.Exp(-v.Rate*v.Expiry)
	if v.Call {
		return decay - drift*distuv.UnitNormal.CDF(d1) - disc*distuv.UnitNormal.CDF(d2)
	}
	return decay + drift*distuv.UnitNormal.CDF(-d1) + disc*distuv.UnitNormal.CDF(-d2)
}

// Rho returns ∂V/∂r with the carry spread held fixed: the yield q in
// b = r - q stays put, so Carry moves one-for-one with Rate. This keeps
// the classic K·T·e^{-rT}·Φ(d2) form for every carry regime.
func (v Vanilla) Rho(s float64) float64 {
	if _, ok := v.degenerate(s); ok {
		return 0
	}
	_, d2 := v.d1d2(s)
	kte := v.Strike * v.Expiry * math.Exp(-v.Rate*v.Expiry)
	if v.Call {
		return kte * distuv.UnitNormal.CDF(d2)
	}
	return -kte * distuv.UnitNormal.CDF(-d2)
}

// Greek names one sensitivity for the batch evaluator.
type Greek int

const (
	Delta Greek = iota
	Gamma
	Vega
	Theta
	Rho
)

// Prices values each contract at its spot. The slices must have equal
// length; mismatches fail with ErrBatchLength.
func Prices(opts []Vanilla, spots []float64) ([]float64, error) {
	if len(opts) != len(spots) {
		return nil, fmt.Errorf("%d contracts, %d spots: %w", len(opts), len(spots), ErrBatchLength)
	}
	out := make([]float64, len(opts))
	for i, v := range opts {
		out[i] = v.Price(spots[i])
	}
	return out, nil
}

// Greeks evaluates the named sensitivity of each contract at its spot.
func Greeks(opts []Vanilla, spots []float64, g Greek) ([]float64, error) {
	if len(opts) != len(spots) {
		return nil, fmt.Errorf("%d contracts, %d spots: %w", len(opts), len(spots), ErrBatchLength)
	}
	var f func(Vanilla, float64) float64
	switch g {
	case Delta:
		f = Vanilla.Delta
	case Gamma:
		f = Vanilla.Gamma
	case Vega:
		f = Vanilla.Vega
	case Theta:
		f = Vanilla.Theta
	case Rho:
		f = Vanilla.Rho
	default:
		return nil, fmt.Errorf("greek %d: %w", g, ErrBadGreek)
	}
	out := make([]float64, len(opts))
	for i, v := range opts {
		out[i] = f(v, spots[i])
	}
	return out, nil
}
