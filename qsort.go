// Package qsort implements an unstable, in-place, comparison based sort.
//
// The sort is a quicksort that picks its pivot as a median of three (or of
// five for long ranges), splits off blocks of keys equivalent to the pivot,
// and probes already partitioned ranges with a bounded insertion sort so that
// sorted and nearly sorted inputs finish in linear time. It recurses only on
// the smaller side of each partition, bounding the stack depth to O(log n).
// It does not fall back to heapsort: quadratic behaviour is made unlikely,
// not impossible.
//
// Comparators must be strict weak orderings. Violating that, or modifying the
// slice concurrently, leaves the result unspecified.
package qsort

import "cmp"

// Slice sorts x in ascending order as determined by cmp.Less. NaNs are
// ordered before other values.
func Slice[S ~[]E, E cmp.Ordered](x S) {
	if len(x) <= 5 {
		sortSmall([]E(x), 0, len(x), cmp.Less[E])
		return
	}
	p := paramsFor[E](Default)
	sortRange([]E(x), 0, len(x), &p, cmp.Less[E])
}

// Func sorts x in ascending order as determined by less.
func Func[S ~[]E, E any](x S, less func(a, b E) bool) {
	Sorter[E]{Less: less}.Sort([]E(x))
}

// Sorter sorts slices of E with a fixed comparator and configuration.
type Sorter[E any] struct {
	Config Config
	Less   func(a, b E) bool
}

// Sort sorts x in ascending order as determined by s.Less.
func (s Sorter[E]) Sort(x []E) {
	if len(x) <= 5 {
		sortSmall(x, 0, len(x), s.Less)
		return
	}
	p := paramsFor[E](s.Config)
	sortRange(x, 0, len(x), &p, s.Less)
}

// InsertionSort sorts x with a stable insertion sort. It is quadratic and is
// only suitable for short slices.
func InsertionSort[S ~[]E, E any](x S, less func(a, b E) bool) {
	insertionSort([]E(x), 0, len(x), less)
}

// InsertionSortSlice is InsertionSort using cmp.Less.
func InsertionSortSlice[S ~[]E, E cmp.Ordered](x S) {
	insertionSort([]E(x), 0, len(x), cmp.Less[E])
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[S ~[]E, E cmp.Ordered](x S) bool {
	return IsSortedFunc(x, cmp.Less[E])
}

// IsSortedFunc reports whether x is sorted in ascending order as determined
// by less.
func IsSortedFunc[S ~[]E, E any](x S, less func(a, b E) bool) bool {
	for i := len(x) - 1; i > 0; i-- {
		if less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}
