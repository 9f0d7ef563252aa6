package qsort

// sort3 orders x[a], x[b], x[c] with at most 3 comparisons and returns the
// number of swaps performed.
func sort3[E any](x []E, a, b, c int, less func(a, b E) bool) (swaps int) {
	if !less(x[b], x[a]) {
		if !less(x[c], x[b]) {
			return 0
		}
		x[b], x[c] = x[c], x[b]
		swaps = 1
		if less(x[b], x[a]) {
			x[a], x[b] = x[b], x[a]
			swaps = 2
		}
		return swaps
	}

	if less(x[c], x[b]) {
		x[a], x[c] = x[c], x[a]
		return 1
	}

	x[a], x[b] = x[b], x[a]
	swaps = 1
	if less(x[c], x[b]) {
		x[b], x[c] = x[c], x[b]
		swaps = 2
	}
	return swaps
}

// sort4 orders x[a], x[b], x[c], x[d] by sorting the first three and sifting
// the fourth down.
func sort4[E any](x []E, a, b, c, d int, less func(a, b E) bool) (swaps int) {
	swaps = sort3(x, a, b, c, less)
	if less(x[d], x[c]) {
		x[c], x[d] = x[d], x[c]
		swaps++
		if less(x[c], x[b]) {
			x[b], x[c] = x[c], x[b]
			swaps++
			if less(x[b], x[a]) {
				x[a], x[b] = x[b], x[a]
				swaps++
			}
		}
	}
	return swaps
}

func sort5[E any](x []E, a, b, c, d, e int, less func(a, b E) bool) (swaps int) {
	swaps = sort4(x, a, b, c, d, less)
	if less(x[e], x[d]) {
		x[d], x[e] = x[e], x[d]
		swaps++
		if less(x[d], x[c]) {
			x[c], x[d] = x[d], x[c]
			swaps++
			if less(x[c], x[b]) {
				x[b], x[c] = x[c], x[b]
				swaps++
				if less(x[b], x[a]) {
					x[a], x[b] = x[b], x[a]
					swaps++
				}
			}
		}
	}
	return swaps
}

// sortSmall sorts x[a:b] when b-a <= 5.
func sortSmall[E any](x []E, a, b int, less func(a, b E) bool) {
	switch b - a {
	case 2:
		if less(x[a+1], x[a]) {
			x[a], x[a+1] = x[a+1], x[a]
		}
	case 3:
		sort3(x, a, a+1, a+2, less)
	case 4:
		sort4(x, a, a+1, a+2, a+3, less)
	case 5:
		sort5(x, a, a+1, a+2, a+3, a+4, less)
	}
}
