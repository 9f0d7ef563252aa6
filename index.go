// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the Go LICENSE file.

package qsort

// T describes a collection through index callbacks. Less must be a strict
// weak ordering over the elements at the given indexes.
type T struct {
	Less func(i, j int) bool
	Swap func(i, j int)
}

// Sort sorts the n elements described by data.
func Sort(data T, n int) {
	Default.Sort(data, n)
}

// Sort sorts the n elements described by data using the configuration c.
func (c Config) Sort(data T, n int) {
	p := c.params(false)
	sortRangeT(data, 0, n, &p)
}

// Less sorts x using a comparator over indexes, like sort.Slice.
func Less[S ~[]E, E any](x S, less func(i, j int) bool) {
	Sort(T{
		Less: less,
		Swap: func(i, j int) { x[i], x[j] = x[j], x[i] },
	}, len(x))
}

//
// index callback twins of the slice routines
//

func sort3T(data T, a, b, c int) (swaps int) {
	if !data.Less(b, a) {
		if !data.Less(c, b) {
			return 0
		}
		data.Swap(b, c)
		swaps = 1
		if data.Less(b, a) {
			data.Swap(a, b)
			swaps = 2
		}
		return swaps
	}

	if data.Less(c, b) {
		data.Swap(a, c)
		return 1
	}

	data.Swap(a, b)
	swaps = 1
	if data.Less(c, b) {
		data.Swap(b, c)
		swaps = 2
	}
	return swaps
}

func sort4T(data T, a, b, c, d int) (swaps int) {
	swaps = sort3T(data, a, b, c)
	if data.Less(d, c) {
		data.Swap(c, d)
		swaps++
		if data.Less(c, b) {
			data.Swap(b, c)
			swaps++
			if data.Less(b, a) {
				data.Swap(a, b)
				swaps++
			}
		}
	}
	return swaps
}

func sort5T(data T, a, b, c, d, e int) (swaps int) {
	swaps = sort4T(data, a, b, c, d)
	if data.Less(e, d) {
		data.Swap(d, e)
		swaps++
		if data.Less(d, c) {
			data.Swap(c, d)
			swaps++
			if data.Less(c, b) {
				data.Swap(b, c)
				swaps++
				if data.Less(b, a) {
					data.Swap(a, b)
					swaps++
				}
			}
		}
	}
	return swaps
}

func sortSmallT(data T, a, b int) {
	switch b - a {
	case 2:
		if data.Less(a+1, a) {
			data.Swap(a, a+1)
		}
	case 3:
		sort3T(data, a, a+1, a+2)
	case 4:
		sort4T(data, a, a+1, a+2, a+3)
	case 5:
		sort5T(data, a, a+1, a+2, a+3, a+4)
	}
}

// insertionSort3T sorts data[a:b] where b-a >= 3. Without a temporary the
// out of place element is walked down by adjacent swaps.
func insertionSort3T(data T, a, b int) {
	sort3T(data, a, a+1, a+2)
	for i := a + 3; i < b; i++ {
		for j := i; j > a && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// insertionSortIncompleteT is insertionSortIncomplete over index callbacks.
func insertionSortIncompleteT(data T, a, b, limit int) (end int, ok bool) {
	if b-a <= 5 {
		sortSmallT(data, a, b)
		return b, true
	}

	sort3T(data, a, a+1, a+2)
	moved := 0
	for i := a + 3; i < b; i++ {
		if !data.Less(i, i-1) {
			continue
		}
		for j := i; j > a && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
		if moved++; moved == limit {
			return i + 1, i+1 == b
		}
	}
	return b, true
}

// sortRangeT sorts data[a:b]. See sortRange for the description of each step.
func sortRangeT(data T, a, b int, p *params) {
restart:
	for {
		length := b - a
		if length <= 5 {
			sortSmallT(data, a, b)
			return
		}
		if length <= p.cutoff {
			insertionSort3T(data, a, b)
			return
		}

		m, last := a+length/2, b-1

		var swaps int
		if length >= p.ninther {
			delta := length / 4
			swaps = sort5T(data, a, a+delta, m, m+delta, last)
		} else {
			swaps = sort3T(data, a, m, last)
		}

		i, j := a, last
		if !data.Less(i, m) {
			for {
				j--
				if i == j {
					i, j = a+1, last
					if !data.Less(a, j) {
						for {
							if i == j {
								return
							}
							if data.Less(a, i) {
								data.Swap(i, j)
								swaps++
								i++
								break
							}
							i++
						}
					}
					if i == j {
						return
					}
					for {
						for !data.Less(a, i) {
							i++
						}
						for {
							j--
							if !data.Less(a, j) {
								break
							}
						}
						if i >= j {
							break
						}
						data.Swap(i, j)
						swaps++
						i++
					}
					a = i
					continue restart
				}
				if data.Less(j, m) {
					data.Swap(i, j)
					swaps++
					break
				}
			}
		}

		i++
		if i < j {
			for {
				for data.Less(i, m) {
					i++
				}
				for {
					j--
					if data.Less(j, m) {
						break
					}
				}
				if i > j {
					break
				}
				data.Swap(i, j)
				swaps++
				if m == i {
					m = j
				}
				i++
			}
		}

		if i != m && data.Less(m, i) {
			data.Swap(i, m)
			swaps++
		}

		if swaps == 0 {
			_, left := insertionSortIncompleteT(data, a, i, p.probe)
			if _, right := insertionSortIncompleteT(data, i+1, b, p.probe); right {
				if left {
					return
				}
				b = i
				continue
			}
			if left {
				a = i + 1
				continue
			}
		}

		if i-a < b-i {
			sortRangeT(data, a, i, p)
			a = i + 1
		} else {
			sortRangeT(data, i+1, b, p)
			b = i
		}
	}
}
