package qsort

import "fmt"

// insertionSort sorts x[a:b] using insertion sort. It is stable.
func insertionSort[E any](x []E, a, b int, less func(a, b E) bool) {
	for i := a + 1; i < b; i++ {
		if !less(x[i], x[i-1]) {
			continue
		}
		t := x[i]
		j := i
		for {
			x[j] = x[j-1]
			j--
			if j == a || !less(t, x[j-1]) {
				break
			}
		}
		x[j] = t
	}
}

// insertionSort3 sorts x[a:b] where b-a >= 3. The first three elements are
// ordered with sort3 and the scan starts after them.
func insertionSort3[E any](x []E, a, b int, less func(a, b E) bool) {
	sort3(x, a, a+1, a+2, less)
	for i := a + 3; i < b; i++ {
		if !less(x[i], x[i-1]) {
			continue
		}
		t := x[i]
		j := i
		for {
			x[j] = x[j-1]
			j--
			if j == a || !less(t, x[j-1]) {
				break
			}
		}
		x[j] = t
	}
}

// insertionSortIncomplete attempts to insertion sort x[a:b], giving up once
// limit elements have been relocated. It reports whether x[a:b] is sorted and
// the exclusive end of the prefix that is known to be sorted.
func insertionSortIncomplete[E any](x []E, a, b, limit int, less func(a, b E) bool) (end int, ok bool) {
	if b-a <= 5 {
		sortSmall(x, a, b, less)
		return b, true
	}

	sort3(x, a, a+1, a+2, less)
	moved := 0
	for i := a + 3; i < b; i++ {
		if !less(x[i], x[i-1]) {
			continue
		}
		t := x[i]
		j := i
		for {
			x[j] = x[j-1]
			j--
			if j == a || !less(t, x[j-1]) {
				break
			}
		}
		x[j] = t

		if moved++; moved == limit {
			return i + 1, i+1 == b
		}
	}
	return b, true
}

// InsertionSortMove writes a sorted copy of src into dst using insertion
// sort. src is left untouched and dst must hold at least len(src) elements.
// If less panics, every slot of dst written so far is reset to the zero
// value before the panic continues.
func InsertionSortMove[E any](dst, src []E, less func(a, b E) bool) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("qsort: destination too short: %d < %d", len(dst), len(src)))
	}
	if len(src) == 0 {
		return
	}

	built, done := 0, false
	defer func() {
		if !done {
			clear(dst[:built])
		}
	}()

	dst[0] = src[0]
	built = 1

	for i := 1; i < len(src); i++ {
		if !less(src[i], dst[built-1]) {
			dst[built] = src[i]
			built++
			continue
		}

		dst[built] = dst[built-1]
		built++

		j := built - 2
		for j > 0 && less(src[i], dst[j-1]) {
			dst[j] = dst[j-1]
			j--
		}
		dst[j] = src[i]
	}
	done = true
}
