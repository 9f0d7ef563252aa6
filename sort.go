package qsort

// sortRange sorts x[a:b]. It recurses on the smaller side of every partition
// and loops on the larger one, so the stack depth is O(log n).
func sortRange[E any](x []E, a, b int, p *params, less func(a, b E) bool) {
restart:
	for {
		length := b - a
		if length <= 5 {
			sortSmall(x, a, b, less)
			return
		}
		if length <= p.cutoff {
			insertionSort3(x, a, b, less)
			return
		}

		m, last := a+length/2, b-1

		var swaps int
		if length >= p.ninther {
			delta := length / 4
			swaps = sort5(x, a, a+delta, m, m+delta, last, less)
		} else {
			swaps = sort3(x, a, m, last, less)
		}

		// x[m] is the pivot and x[m] <= x[last]. The upward scan is guarded by
		// the pivot but the downward one is not, so find a guard for it first.
		i, j := a, last
		if !less(x[i], x[m]) {
			// x[a] is equivalent to the pivot.
			for {
				j--
				if i == j {
					// Nothing in x[a:last] is less than the pivot. Partition
					// into x[a:i] equivalent to x[a] and x[i:b] greater than it.
					i, j = a+1, last
					if !less(x[a], x[j]) {
						// x[last] is equivalent too; find a greater element to
						// guard the upward scan.
						for {
							if i == j {
								return
							}
							if less(x[a], x[i]) {
								x[i], x[j] = x[j], x[i]
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
						for !less(x[a], x[i]) {
							i++
						}
						for {
							j--
							if !less(x[a], x[j]) {
								break
							}
						}
						if i >= j {
							break
						}
						x[i], x[j] = x[j], x[i]
						swaps++
						i++
					}
					// x[a:i] is a block of equivalent elements.
					a = i
					continue restart
				}
				if less(x[j], x[m]) {
					x[i], x[j] = x[j], x[i]
					swaps++
					break
				}
			}
		}

		// x[i] < pivot and i <= m.
		i++
		if i < j {
			for {
				for less(x[i], x[m]) {
					i++
				}
				for {
					j--
					if less(x[j], x[m]) {
						break
					}
				}
				if i > j {
					break
				}
				x[i], x[j] = x[j], x[i]
				swaps++
				// follow the pivot if it moved.
				if m == i {
					m = j
				}
				i++
			}
		}

		// x[a:i] < pivot <= x[i:b]
		if i != m && less(x[m], x[i]) {
			x[i], x[m] = x[m], x[i]
			swaps++
		}

		// Nothing moved, so the range may already be sorted. Probe both sides
		// with a bounded insertion sort before committing to recursion.
		if swaps == 0 {
			_, left := insertionSortIncomplete(x, a, i, p.probe, less)
			if _, right := insertionSortIncomplete(x, i+1, b, p.probe, less); right {
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
			sortRange(x, a, i, p, less)
			a = i + 1
		} else {
			sortRange(x, i+1, b, p, less)
			b = i
		}
	}
}
