package testhelp

import (
	"slices"
	"testing"

	"github.com/zeebo/assert"
)

func TestShapes(t *testing.T) {
	assert.DeepEqual(t, Sorted(4), []int{0, 1, 2, 3})
	assert.DeepEqual(t, Reversed(4), []int{4, 3, 2, 1})
	assert.DeepEqual(t, Equal(3, 7), []int{7, 7, 7})
	assert.DeepEqual(t, Sawtooth(6, 3), []int{0, 1, 2, 0, 1, 2})
	assert.DeepEqual(t, OrganPipe(5), []int{0, 1, 2, 1, 0})
	assert.DeepEqual(t, NearlySorted(1, 5), []int{0})

	for _, v := range FewUnique(1000, 3) {
		assert.That(t, v >= 0 && v < 3)
	}
	for _, s := range Strings(100, 5) {
		assert.That(t, len(s) < 5)
	}
}

func TestPermutation(t *testing.T) {
	x := Permutation(1000)
	slices.Sort(x)
	for i, v := range x {
		assert.Equal(t, v, uint32(i))
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter(func(a, b int) bool { return a < b })
	assert.That(t, c.Less(1, 2))
	assert.That(t, !c.Less(2, 1))
	assert.Equal(t, c.Calls, 2)
	c.Reset()
	assert.Equal(t, c.Calls, 0)
}
