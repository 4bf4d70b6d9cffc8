// SPDX-License-Identifier: MIT

// Package bs provides the Black-Scholes closed-form prices and greeks for
// European vanilla options.
//
// Its role in this module is a reference oracle: the lattice and
// Monte-Carlo engines are validated against these formulas in tests, and
// they remain useful on their own for calibration seeds and quick quotes.
//
// # 🚀 What you get
//
//   - Vanilla — a value type describing one European call or put.
//   - Price, Delta, Gamma, Vega, Theta, Rho — the usual closed forms,
//     each a pure function of the spot.
//   - Prices, Greeks — batch evaluators over contract/spot slices, the
//     latter dispatching on a Greek name.
//
// # ✨ Conventions
//
//   - Continuous compounding. Rate discounts; Carry is the cost of
//     carry b behind the forward F = S·e^{bT}. Set Carry = Rate for a
//     non-dividend stock, Rate - q for a continuous dividend yield,
//     0 for an option on a future (Black-76).
//   - Theta is the calendar-time derivative ∂V/∂t (negative for long
//     vanillas), Vega is per unit of σ, Rho is per unit of r with the
//     carry spread b - r held fixed.
//   - Expired or zero-volatility contracts degrade to (discounted)
//     intrinsic value instead of returning NaN.
//
// # ⚙️ Example
//
//	v := bs.Vanilla{Strike: 100, Expiry: 1, Rate: 0.05, Carry: 0.05, Vol: 0.2, Call: true}
//	price := v.Price(105)
package bs
