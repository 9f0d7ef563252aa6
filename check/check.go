// Package check verifies the results of a sort: that the output is ordered
// and that it holds exactly the elements of the input.
package check

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"
	"github.com/zeebo/xxh3"
)

// Error is the class of errors returned by this package.
const Error = errs.Tag("check")

// Sorted returns an error naming the first adjacent pair of x that is out of
// order according to less.
func Sorted[E any](x []E, less func(a, b E) bool) error {
	for i := 1; i < len(x); i++ {
		if less(x[i], x[i-1]) {
			return Error.Errorf("out of order at index %d: %v < %v", i, x[i], x[i-1])
		}
	}
	return nil
}

// Digest is an order independent summary of a multiset of elements. Two
// slices holding the same elements in any order have equal digests.
type Digest struct {
	N   uint64
	sum xxh3.Uint128
	xor xxh3.Uint128
	buf []byte
}

// Add adds the encoding of one element to the digest.
func (d *Digest) Add(enc []byte) {
	h := xxh3.Hash128(enc)
	lo := d.sum.Lo + h.Lo
	if lo < d.sum.Lo {
		d.sum.Hi++
	}
	d.sum.Lo = lo
	d.sum.Hi += h.Hi
	d.xor.Lo ^= h.Lo
	d.xor.Hi ^= h.Hi
	d.N++
}

// AddString adds a string element to the digest.
func (d *Digest) AddString(s string) {
	d.buf = append(d.buf[:0], s...)
	d.Add(d.buf)
}

// Equal reports whether both digests summarize the same multiset.
func (d *Digest) Equal(o *Digest) bool {
	return d.N == o.N && d.sum == o.sum && d.xor == o.xor
}

// Of computes the digest of x using enc to append the encoding of each element
// to a scratch buffer.
func Of[E any](x []E, enc func(buf []byte, v E) []byte) (d Digest) {
	for _, v := range x {
		d.buf = enc(d.buf[:0], v)
		d.Add(d.buf)
	}
	return d
}

// Same returns an error if before and after do not summarize the same
// multiset.
func Same(before, after *Digest) error {
	if before.N != after.N {
		return Error.Errorf("element count changed: %d != %d", before.N, after.N)
	}
	if !before.Equal(after) {
		return Error.Errorf("elements changed")
	}
	return nil
}

// Dense returns an error unless x is a permutation of [0, len(x)).
func Dense(x []uint32) error {
	bm := roaring.New()
	for i, v := range x {
		if uint64(v) >= uint64(len(x)) {
			return Error.Errorf("value %d at index %d out of range", v, i)
		}
		if !bm.CheckedAdd(v) {
			return Error.Errorf("duplicate value %d at index %d", v, i)
		}
	}
	if card := bm.GetCardinality(); card != uint64(len(x)) {
		return Error.Errorf("missing values: have %d of %d", card, len(x))
	}
	return nil
}
