package check

import (
	"cmp"
	"encoding/binary"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/qsort/testhelp"
)

func encInt(buf []byte, v int) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

func TestSorted(t *testing.T) {
	assert.NoError(t, Sorted([]int{}, cmp.Less[int]))
	assert.NoError(t, Sorted([]int{1, 1, 2, 3}, cmp.Less[int]))

	err := Sorted([]int{1, 3, 2}, cmp.Less[int])
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	t.Run("Permuted", func(t *testing.T) {
		x := testhelp.Ints(1000, 50)
		y := append([]int(nil), x...)
		for i, j := 0, len(y)-1; i < j; i, j = i+1, j-1 {
			y[i], y[j] = y[j], y[i]
		}

		dx, dy := Of(x, encInt), Of(y, encInt)
		assert.That(t, dx.Equal(&dy))
		assert.NoError(t, Same(&dx, &dy))
	})

	t.Run("Changed", func(t *testing.T) {
		x := []int{1, 2, 2, 3}
		y := []int{1, 2, 3, 3}

		dx, dy := Of(x, encInt), Of(y, encInt)
		assert.That(t, !dx.Equal(&dy))
		assert.Error(t, Same(&dx, &dy))
	})

	t.Run("Count", func(t *testing.T) {
		dx, dy := Of([]int{1, 2}, encInt), Of([]int{1, 2, 2}, encInt)
		assert.Error(t, Same(&dx, &dy))
	})

	t.Run("Strings", func(t *testing.T) {
		var a, b Digest
		for _, s := range []string{"apple", "banana", "cherry"} {
			a.AddString(s)
		}
		for _, s := range []string{"cherry", "apple", "banana"} {
			b.AddString(s)
		}
		assert.That(t, a.Equal(&b))
		assert.Equal(t, a.N, uint64(3))
	})
}

func TestDense(t *testing.T) {
	assert.NoError(t, Dense(nil))
	assert.NoError(t, Dense(testhelp.Permutation(10000)))

	assert.Error(t, Dense([]uint32{0, 1, 1}))
	assert.Error(t, Dense([]uint32{0, 1, 3}))
}
