// SPDX-License-Identifier: MIT

package sequence_test

import (
	"testing"

	"github.com/katalvlaran/quantcore/sequence"
)

func BenchmarkSplitMixNext(b *testing.B) {
	st, _ := sequence.NewSplitMix(1, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Next(64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSobolNext(b *testing.B) {
	st, _ := sequence.NewSobol(8, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Next(64); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSplitMixSplit(b *testing.B) {
	st, _ := sequence.NewSplitMix(1, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := st.Split(16); err != nil {
			b.Fatal(err)
		}
	}
}
