package qsort

import "github.com/histdb/qsort/sizeof"

// Config holds the tuning knobs of the sort. The zero value of any field
// means the corresponding field of Default.
type Config struct {
	// Cutoff is the length at or below which ranges of pointer-free
	// elements are finished with insertion sort.
	Cutoff int

	// IndirectCutoff is the insertion sort cutoff for elements that contain
	// pointers and for sorts driven through T.
	IndirectCutoff int

	// NintherLength is the length at which the pivot is chosen as the
	// median of five instead of the median of three.
	NintherLength int

	// ProbeLimit is the number of relocations after which an insertion
	// sort probe gives up.
	ProbeLimit int
}

// Default is the configuration used by Slice, Func, Less and Sort.
var Default = Config{
	Cutoff:         30,
	IndirectCutoff: 6,
	NintherLength:  1000,
	ProbeLimit:     8,
}

// params is a Config with every field resolved for a single sort call.
type params struct {
	cutoff  int
	ninther int
	probe   int
}

func (c Config) params(pointerFree bool) (p params) {
	p.cutoff = c.IndirectCutoff
	if p.cutoff == 0 {
		p.cutoff = Default.IndirectCutoff
	}
	if pointerFree {
		p.cutoff = c.Cutoff
		if p.cutoff == 0 {
			p.cutoff = Default.Cutoff
		}
	}
	// ranges of 5 or fewer always go through the fixed sorters.
	p.cutoff = max(p.cutoff, 5)

	p.ninther = c.NintherLength
	if p.ninther <= 0 {
		p.ninther = Default.NintherLength
	}
	// sort5 needs room for five distinct positions.
	p.ninther = max(p.ninther, 8)

	p.probe = c.ProbeLimit
	if p.probe <= 0 {
		p.probe = Default.ProbeLimit
	}
	return p
}

func paramsFor[E any](c Config) params {
	return c.params(sizeof.PointerFree[E]())
}
