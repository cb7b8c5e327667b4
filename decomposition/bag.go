// Package decomposition: the Bag value type and its set algebra.
//
// A Bag is an ascending duplicate-free vertex slice. All constructors
// normalize; all binary operations assume both operands are normalized and
// run as linear merges.

package decomposition

import (
	"sort"

	"github.com/katalvlaran/treedec/hypergraph"
)

// Bag is the sorted duplicate-free vertex set attached to a node.
type Bag []hypergraph.Vertex

// NewBag builds a normalized bag from the given vertices.
// Complexity: O(k log k)
func NewBag(vs ...hypergraph.Vertex) Bag {
	b := make(Bag, len(vs))
	copy(b, vs)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	out := b[:0]
	for i, v := range b {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Clone returns an independent copy of the bag.
func (b Bag) Clone() Bag {
	out := make(Bag, len(b))
	copy(out, b)

	return out
}

// IsEmpty reports whether the bag has no vertices.
func (b Bag) IsEmpty() bool { return len(b) == 0 }

// Contains reports whether v is in the bag. Complexity: O(log k).
func (b Bag) Contains(v hypergraph.Vertex) bool {
	i := sort.Search(len(b), func(i int) bool { return b[i] >= v })

	return i < len(b) && b[i] == v
}

// Equal reports element-wise equality.
func (b Bag) Equal(o Bag) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}

	return true
}

// SubsetOf reports whether every vertex of b occurs in o.
func (b Bag) SubsetOf(o Bag) bool {
	j := 0
	for _, v := range b {
		for j < len(o) && o[j] < v {
			j++
		}
		if j == len(o) || o[j] != v {
			return false
		}
		j++
	}

	return true
}

// Union returns the merged bag b ∪ o.
func (b Bag) Union(o Bag) Bag {
	out := make(Bag, 0, len(b)+len(o))
	i, j := 0, 0
	for i < len(b) && j < len(o) {
		switch {
		case b[i] < o[j]:
			out = append(out, b[i])
			i++
		case b[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, b[i])
			i++
			j++
		}
	}
	out = append(out, b[i:]...)
	out = append(out, o[j:]...)

	return out
}

// Intersect returns b ∩ o.
func (b Bag) Intersect(o Bag) Bag {
	var out Bag
	i, j := 0, 0
	for i < len(b) && j < len(o) {
		switch {
		case b[i] < o[j]:
			i++
		case b[i] > o[j]:
			j++
		default:
			out = append(out, b[i])
			i++
			j++
		}
	}

	return out
}

// Diff returns b \ o.
func (b Bag) Diff(o Bag) Bag {
	var out Bag
	j := 0
	for _, v := range b {
		for j < len(o) && o[j] < v {
			j++
		}
		if j == len(o) || o[j] != v {
			out = append(out, v)
		}
	}

	return out
}
