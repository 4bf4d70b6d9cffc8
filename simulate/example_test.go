// SPDX-License-Identifier: MIT

package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/quantcore/process"
	"github.com/katalvlaran/quantcore/sequence"
	"github.com/katalvlaran/quantcore/simulate"
)

// ExampleSimulate prices nothing — it just shows the wiring: a model, a
// stream of matching dimension, a time grid, and the returned batch.
func ExampleSimulate() {
	gbm, _ := process.NewGBM(0.05, 0.2)
	st, _ := sequence.NewSplitMix(42, gbm.Factors())
	times := []float64{0, 0.5, 1.0}

	batch, rep, err := simulate.Simulate(gbm, []float64{100}, st, times, 4, nil)
	if err != nil {
		fmt.Println("simulate:", err)
		return
	}
	fmt.Println("scheme:", rep.Used)
	fmt.Println("paths:", batch.Paths, "steps:", batch.Steps())
	fmt.Println("positive terminal:", batch.Terminal(0)[0] > 0)
	// Output:
	// scheme: euler-maruyama
	// paths: 4 steps: 2
	// positive terminal: true
}

// ExampleSimulate_milstein requests the higher-order scheme and inspects
// the report for capability downgrades.
func ExampleSimulate_milstein() {
	hes, _ := process.NewHeston(0.02, 2.0, 0.09, 0.3, -0.5)
	st, _ := sequence.NewSplitMix(7, hes.Factors())
	opts := simulate.DefaultOptions()
	opts.Scheme = simulate.Milstein
	opts.Policy = simulate.DomainClip

	_, rep, err := simulate.Simulate(hes, []float64{100, 0.09}, st,
		[]float64{0, 0.25, 0.5, 0.75, 1}, 16, &opts)
	if err != nil {
		fmt.Println("simulate:", err)
		return
	}
	fmt.Println("requested:", rep.Requested)
	fmt.Println("used:", rep.Used)
	fmt.Println("downgraded:", rep.Downgraded)
	// Output:
	// requested: milstein
	// used: euler-maruyama
	// downgraded: true
}
