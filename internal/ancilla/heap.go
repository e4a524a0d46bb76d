// Package ancilla implements the synthesiser's scratch-bit pool: an
// ancilla heap is a value representing the (conceptually infinite) set
// of bit identifiers currently free for the synthesiser to borrow.
package ancilla

import "github.com/revsynth/revsynth/internal/bitid"

// Heap represents the free set {threshold, threshold+1, ...} minus the
// indices in holes, plus the indices in holes itself — i.e. its element
// set is (holes) ∪ [threshold, ∞). holes always satisfies
// ∀h ∈ holes. h < threshold: Insert restores this by merging a hole
// back into threshold whenever it becomes adjacent.
//
// Heap is a value: every operation below returns a new Heap rather than
// mutating the receiver, so heaps can be freely shared and compared.
type Heap struct {
	threshold int
	holes     bitid.Set
}

// Above builds the heap whose element set is {k, k+1, k+2, ...}.
func Above(k int) Heap {
	return Heap{threshold: k, holes: bitid.Set{}}
}

// Threshold returns the smallest index guaranteed free without
// consulting holes; exposed for display and testing, not part of the
// abstract contract.
func (h Heap) Threshold() int {
	return h.threshold
}

// Mem reports whether i is currently free in h.
func (h Heap) Mem(i int) bool {
	return i >= h.threshold || h.holes.Has(i)
}

// Elts materializes the heap's element set up to (and excluding) bound,
// for tests and display; the heap itself has no finite element set.
func (h Heap) Elts(bound int) []int {
	var out []int
	for i := 0; i < bound; i++ {
		if h.Mem(i) {
			out = append(out, i)
		}
	}
	return out
}

// Equal reports whether h and o have the same (finite) representation.
// Because Insert always normalizes holes below threshold and never
// leaves a hole adjacent to threshold, two heaps with equal element
// sets always compare Equal here.
func (h Heap) Equal(o Heap) bool {
	if h.threshold != o.threshold {
		return false
	}
	if len(h.holes) != len(o.holes) {
		return false
	}
	for k := range h.holes {
		if !o.holes.Has(k) {
			return false
		}
	}
	return true
}

// PopMin removes and returns the smallest free index in h.
// Above(k) guarantees a heap is never empty, so PopMin never fails.
func (h Heap) PopMin() (Heap, int) {
	if len(h.holes) == 0 {
		return Heap{threshold: h.threshold + 1, holes: h.holes}, h.threshold
	}
	min := h.threshold
	for i := range h.holes {
		if i < min {
			min = i
		}
	}
	return Heap{threshold: h.threshold, holes: h.holes.Without(min)}, min
}

// Insert returns a heap with i added back to the free set. Inserting an
// already-free index (including any i >= threshold, which is always
// already free) is a no-op. When i lands exactly at threshold-1, holes
// are merged upward into threshold so the representation stays
// canonical: Above(k) after popping and reinserting k reproduces
// Above(k) exactly.
func (h Heap) Insert(i int) Heap {
	if h.Mem(i) {
		return h
	}
	threshold := h.threshold
	holes := h.holes.With(i)
	for holes.Has(threshold - 1) {
		holes = holes.Without(threshold - 1)
		threshold--
	}
	return Heap{threshold: threshold, holes: holes}
}

// InsertAll folds Insert over xs, in order.
func InsertAll(h Heap, xs []int) Heap {
	for _, x := range xs {
		h = h.Insert(x)
	}
	return h
}
