package testhelp

import "github.com/zeebo/mwc"

var (
	intRng  = mwc.Rand()
	permRng = mwc.Rand()
	strRng  = mwc.Rand()
)

// Ints returns n random ints in [0, max).
func Ints(n int, max uint32) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = int(intRng.Uint32n(max))
	}
	return x
}

func Sorted(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = i
	}
	return x
}

func Reversed(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = n - i
	}
	return x
}

func Equal(n int, v int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = v
	}
	return x
}

// Sawtooth returns n ascending runs of length period.
func Sawtooth(n, period int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = i % period
	}
	return x
}

// OrganPipe returns values that ascend to the middle and then descend.
func OrganPipe(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = min(i, n-1-i)
	}
	return x
}

// FewUnique returns n random ints drawn from k distinct values.
func FewUnique(n int, k uint32) []int {
	return Ints(n, k)
}

// NearlySorted returns an ascending slice with swaps random transpositions.
func NearlySorted(n, swaps int) []int {
	x := Sorted(n)
	if n < 2 {
		return x
	}
	for range swaps {
		i, j := intRng.Uint32n(uint32(n)), intRng.Uint32n(uint32(n))
		x[i], x[j] = x[j], x[i]
	}
	return x
}

// Permutation returns a random permutation of [0, n).
func Permutation(n int) []uint32 {
	x := make([]uint32, n)
	for i := range x {
		x[i] = uint32(i)
	}
	for i := n - 1; i > 0; i-- {
		j := permRng.Uint32n(uint32(i + 1))
		x[i], x[j] = x[j], x[i]
	}
	return x
}

// Strings returns n random lowercase strings of length [0, maxLen).
func Strings(n, maxLen int) []string {
	x := make([]string, n)
	for i := range x {
		v := make([]byte, strRng.Uint32n(uint32(maxLen)))
		for j := range v {
			v[j] = 'a' + byte(strRng.Uint32n(26))
		}
		x[i] = string(v)
	}
	return x
}

// Counter wraps less and counts how many times it is called.
type Counter[E any] struct {
	Calls int
	less  func(a, b E) bool
}

func NewCounter[E any](less func(a, b E) bool) *Counter[E] {
	return &Counter[E]{less: less}
}

func (c *Counter[E]) Less(a, b E) bool {
	c.Calls++
	return c.less(a, b)
}

func (c *Counter[E]) Reset() { c.Calls = 0 }
