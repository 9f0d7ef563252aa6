package qsort

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"

	"github.com/histdb/qsort/testhelp"
)

func BenchmarkSort(b *testing.B) {
	for _, s := range shapes {
		for _, n := range []int{100, 10000, 1000000} {
			data := s.gen(n)
			x := make([]int, n)

			b.Run(fmt.Sprintf("%s/%d/Slice", s.name, n), func(b *testing.B) {
				perfbench.Open(b)
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					copy(x, data)
					Slice(x)
				}
			})

			b.Run(fmt.Sprintf("%s/%d/Less", s.name, n), func(b *testing.B) {
				perfbench.Open(b)
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					copy(x, data)
					Less(x, func(i, j int) bool { return x[i] < x[j] })
				}
			})

			b.Run(fmt.Sprintf("%s/%d/Stdlib", s.name, n), func(b *testing.B) {
				perfbench.Open(b)
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					copy(x, data)
					slices.Sort(x)
				}
			})
		}
	}
}

// BenchmarkCutoff sweeps the insertion sort cutoff so it can be tuned for the
// machine at hand.
func BenchmarkCutoff(b *testing.B) {
	data := testhelp.Ints(100000, math.MaxUint32)
	strs := testhelp.Strings(100000, 12)

	for _, cutoff := range []int{6, 12, 20, 30, 40, 60} {
		b.Run(fmt.Sprintf("Int/%d", cutoff), func(b *testing.B) {
			s := Sorter[int]{Config: Config{Cutoff: cutoff}, Less: cmp.Less[int]}
			x := make([]int, len(data))

			perfbench.Open(b)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				copy(x, data)
				s.Sort(x)
			}
		})

		b.Run(fmt.Sprintf("String/%d", cutoff), func(b *testing.B) {
			s := Sorter[string]{Config: Config{IndirectCutoff: cutoff}, Less: cmp.Less[string]}
			x := make([]string, len(strs))

			perfbench.Open(b)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				copy(x, strs)
				s.Sort(x)
			}
		})
	}
}

func BenchmarkInsertionSortMove(b *testing.B) {
	src := testhelp.Strings(24, 8)
	dst := make([]string, len(src))

	perfbench.Open(b)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		InsertionSortMove(dst, src, cmp.Less[string])
	}
}

func BenchmarkStdlibInterface(b *testing.B) {
	data := testhelp.Ints(100000, math.MaxUint32)
	x := make([]int, len(data))

	perfbench.Open(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(x, data)
		sort.Ints(x)
	}
}
