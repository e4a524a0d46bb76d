package synth

import (
	"sort"

	"github.com/revsynth/revsynth/internal/ancilla"
	"github.com/revsynth/revsynth/internal/boolexpr"
	"github.com/revsynth/revsynth/internal/gate"
	"github.com/revsynth/revsynth/internal/simplify"
	"github.com/revsynth/revsynth/internal/xdnf"
)

// Strategy selects one of the three ancilla-management families. The
// synthesizer never infers one; the caller always names it.
type Strategy int

const (
	Boundaries Strategy = iota
	Pebbled
	Bennett
)

func (s Strategy) String() string {
	switch s {
	case Boundaries:
		return "boundaries"
	case Pebbled:
		return "pebbled"
	case Bennett:
		return "bennett"
	default:
		return "?"
	}
}

// simps is simplify(toXDNF(b)), the normal form the wrapper hands to
// the out-of-place compilers.
func simps(b boolexpr.BExp) boolexpr.BExp {
	return simplify.Simplify(xdnf.ToXDNF(b))
}

// CompileProgram compiles a single Boolean-expression-valued location
// under the named strategy, starting from a fresh heap above its
// highest variable index.
func CompileProgram(b boolexpr.BExp, strat Strategy) Result {
	h := ancilla.Above(boolexpr.VarMax(b) + 1)
	e := simps(b)
	var r Result
	switch strat {
	case Boundaries:
		r = CompileCleanOop(h, e)
	case Pebbled:
		r = CompilePebbledOop(h, e)
	case Bennett:
		r = CompileBennettOop(h, esopTerms(xdnf.ToESOP(e)))
	default:
		panic("synth: unknown strategy")
	}
	assertf(gate.WellFormed(r.C), "CompileProgram produced an ill-formed circuit")
	return r
}

// esopTerms turns an ESOP into its list of per-cube BExp terms, the
// shape CompileBennettOop consumes: one out-of-place compile per XOR
// summand (a left-nested And of Vars, or Not(False) for the empty
// cube) rather than one compile of the whole XOR tree.
func esopTerms(s xdnf.ESOP) []boolexpr.BExp {
	terms := make([]boolexpr.BExp, len(s))
	for i, cube := range s {
		terms[i] = cubeTerm(cube)
	}
	return terms
}

func cubeTerm(c xdnf.Cube) boolexpr.BExp {
	if len(c) == 0 {
		return boolexpr.Not{X: boolexpr.False{}}
	}
	var e boolexpr.BExp = boolexpr.Var{I: c[0]}
	for _, v := range c[1:] {
		e = boolexpr.And{X: e, Y: boolexpr.Var{I: v}}
	}
	return e
}

// locWithDepth tags a location with its original array position so the
// fold can sort by AND-depth for compilation and still restore each
// output bit to its original slot on return.
type locWithDepth struct {
	idx   int
	depth int
	expr  boolexpr.BExp
}

func sortedByDepth(bs []boolexpr.BExp) []locWithDepth {
	tagged := make([]locWithDepth, len(bs))
	for i, b := range bs {
		tagged[i] = locWithDepth{idx: i, depth: boolexpr.AndDepth(b), expr: b}
	}
	sort.SliceStable(tagged, func(i, j int) bool { return tagged[i].depth < tagged[j].depth })
	return tagged
}

// startHeap picks a heap above the highest variable index used by any
// of bs, wide enough for every location's compile to draw from.
func startHeap(bs []boolexpr.BExp) ancilla.Heap {
	max := 0
	for _, b := range bs {
		if v := boolexpr.VarMax(b); v > max {
			max = v
		}
	}
	return ancilla.Above(max + 1)
}

// FoldClean compiles every location under Boundaries, sorted by
// ascending AND-depth to improve ancilla reuse, threading one heap
// through the whole array and restoring each output bit to its
// original index.
func FoldClean(bs []boolexpr.BExp) (ancilla.Heap, []int, gate.Circuit) {
	h := startHeap(bs)
	tagged := sortedByDepth(bs)
	out := make([]int, len(bs))
	var c gate.Circuit
	for _, loc := range tagged {
		r := CompileCleanOop(h, simps(loc.expr))
		h = r.Heap
		c = gate.Concat(c, r.C)
		out[loc.idx] = r.R
	}
	return h, out, c
}

// FoldPebbled is FoldClean's Pebbled counterpart.
func FoldPebbled(bs []boolexpr.BExp) (ancilla.Heap, []int, gate.Circuit) {
	h := startHeap(bs)
	tagged := sortedByDepth(bs)
	out := make([]int, len(bs))
	var c gate.Circuit
	for _, loc := range tagged {
		r := CompilePebbledOop(h, simps(loc.expr))
		h = r.Heap
		c = gate.Concat(c, r.C)
		out[loc.idx] = r.R
	}
	return h, out, c
}

// FoldBennett compiles every location under Bennett, in original
// array order (4.G.6 reserves the AND-depth sort for
// Pebbled/Boundaries only), threading one heap through the array.
func FoldBennett(bs []boolexpr.BExp) (ancilla.Heap, []int, gate.Circuit) {
	h := startHeap(bs)
	out := make([]int, len(bs))
	var c gate.Circuit
	for i, b := range bs {
		r := CompileBennettOop(h, esopTerms(xdnf.ToESOP(simps(b))))
		h = r.Heap
		c = gate.Concat(c, r.C)
		out[i] = r.R
	}
	return h, out, c
}
