// SPDX-License-Identifier: MIT

package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/quantcore/sequence"
)

// ExampleNewSobol demonstrates the low-discrepancy structure of the first
// Sobol points in one dimension.
func ExampleNewSobol() {
	s, _ := sequence.NewSobol(1, nil)
	pts, _ := s.Next(8)
	for _, p := range pts {
		fmt.Printf("%.4f\n", p[0])
	}
	// Output:
	// 0.0000
	// 0.5000
	// 0.7500
	// 0.2500
	// 0.3750
	// 0.8750
	// 0.6250
	// 0.1250
}

// ExampleSplitMix_Split shows deterministic stream splitting for parallel
// workers: every run assigns the same sub-sequence to the same index.
func ExampleSplitMix_Split() {
	root, _ := sequence.NewSplitMix(42, 1)
	subs, _ := root.Split(2)

	again, _ := sequence.NewSplitMix(42, 1)
	subsAgain, _ := again.Split(2)

	a, _ := subs[0].Next(1)
	b, _ := subsAgain[0].Next(1)
	fmt.Println(a[0][0] == b[0][0])
	// Output:
	// true
}
