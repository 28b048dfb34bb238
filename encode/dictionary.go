package encode

import "math/bits"

// Dictionary hands out indices in order of first appearance.
type Dictionary[K comparable] struct {
	index map[K]uint32
	keys  []K
}

func NewDictionary[K comparable]() *Dictionary[K] {
	return &Dictionary[K]{index: make(map[K]uint32)}
}

// Add returns the index of k, assigning the next free one if k is new.
func (d *Dictionary[K]) Add(k K) uint32 {
	if idx, ok := d.index[k]; ok {
		return idx
	}
	idx := uint32(len(d.keys))
	d.index[k] = idx
	d.keys = append(d.keys, k)
	return idx
}

func (d *Dictionary[K]) Index(k K) (uint32, bool) {
	idx, ok := d.index[k]
	return idx, ok
}

func (d *Dictionary[K]) Len() int {
	return len(d.keys)
}

// Keys are ordered by index.
func (d *Dictionary[K]) Keys() []K {
	return d.keys
}

// BitsFor returns ceil(log2(cardinality)). A single symbol needs no bits.
func BitsFor(cardinality int) (int, error) {
	if cardinality < 1 {
		return 0, newError(EmptyDictionary, "cannot address a dictionary with %v entries", cardinality)
	}
	n := bits.Len(uint(cardinality - 1))
	if n > 32 {
		return 0, newError(WidthOverflow, "%v entries need %v bits per index", cardinality, n)
	}
	return n, nil
}
