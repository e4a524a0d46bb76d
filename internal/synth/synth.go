// Package synth implements the reversible-circuit synthesizer: the
// in-place/out-of-place compilation core (4.G.1-4.G.2) and the three
// ancilla-management strategies built on top of it (Clean/Boundaries,
// Pebbled, Bennett).
package synth

import (
	"fmt"

	"github.com/revsynth/revsynth/internal/ancilla"
	"github.com/revsynth/revsynth/internal/boolexpr"
	"github.com/revsynth/revsynth/internal/gate"
)

// assertEnabled gates precondition checks the way the core packages
// guard debug-only invariant assertions; flip to false to build
// without them.
var assertEnabled = true

func assertf(cond bool, format string, args ...any) {
	if assertEnabled && !cond {
		panic(fmt.Sprintf("synth: "+format, args...))
	}
}

// Result is the quadruple (H', r, A, C) every compile entry point
// returns: the heap after allocation/release, the bit holding the
// result, the ancillas still borrowed (empty once cleaned), and the
// gate sequence.
type Result struct {
	Heap ancilla.Heap
	R    int
	A    []int
	C    gate.Circuit
}

// Compile is the in-place synthesizer (4.G.1): it XORs the value of e
// into the caller-supplied target t, never cleaning up any ancilla it
// borrows along the way.
func Compile(h ancilla.Heap, t int, e boolexpr.BExp) Result {
	switch x := e.(type) {
	case boolexpr.False:
		return Result{Heap: h, R: t, A: nil, C: nil}
	case boolexpr.Var:
		return Result{Heap: h, R: t, A: nil, C: gate.Circuit{gate.CNOT(x.I, t)}}
	case boolexpr.Xor:
		r1 := Compile(h, t, x.X)
		r2 := Compile(r1.Heap, t, x.Y)
		return Result{
			Heap: r2.Heap,
			R:    t,
			A:    append(append([]int{}, r1.A...), r2.A...),
			C:    gate.Concat(r1.C, r2.C),
		}
	case boolexpr.And:
		r1 := CompileOop(h, x.X)
		r2 := CompileOop(r1.Heap, x.Y)
		c := gate.Concat(r1.C, r2.C, gate.Circuit{andGate(r1.R, r2.R, t)})
		return Result{
			Heap: r2.Heap,
			R:    t,
			A:    append(append([]int{}, r1.A...), r2.A...),
			C:    c,
		}
	case boolexpr.Not:
		r1 := Compile(h, t, x.X)
		return Result{
			Heap: r1.Heap,
			R:    t,
			A:    r1.A,
			C:    gate.Concat(r1.C, gate.Circuit{gate.NOT(t)}),
		}
	default:
		panic(fmt.Sprintf("synth: unhandled node type %T", e))
	}
}

// andGate XORs c1∧c2 into t. When both operands are the same bit (an
// And of one Var with itself) it emits CNOT(c1, t), which has the same
// effect and, unlike TOFF(c1, c1, t), is well-formed.
func andGate(c1, c2, t int) gate.Gate {
	if c1 == c2 {
		return gate.CNOT(c1, t)
	}
	return gate.TOFF(c1, c2, t)
}

// CompileOop is the out-of-place synthesizer (4.G.2): a bare Var is
// returned as-is with no allocation; anything else pops a fresh
// ancilla from h and compiles in-place into it.
func CompileOop(h ancilla.Heap, e boolexpr.BExp) Result {
	if v, ok := e.(boolexpr.Var); ok {
		return Result{Heap: h, R: v.I, A: nil, C: nil}
	}
	h1, t := h.PopMin()
	r := Compile(h1, t, e)
	return Result{
		Heap: r.Heap,
		R:    t,
		A:    append([]int{t}, r.A...),
		C:    r.C,
	}
}

// CompileClean runs Compile and then immediately folds its borrowed
// ancillas back into the heap (strategy "Boundaries", 4.G.3): the
// forward circuit is followed by the reverse of its own uncompute,
// restoring every ancilla to zero while leaving r correct.
func CompileClean(h ancilla.Heap, t int, e boolexpr.BExp) Result {
	r1 := Compile(h, t, e)
	u := gate.Reverse(gate.Uncompute(r1.C, r1.R))
	h2 := ancilla.InsertAll(r1.Heap, r1.A)
	return Result{Heap: h2, R: r1.R, A: nil, C: gate.Concat(r1.C, u)}
}

// CompileCleanOop mirrors CompileOop under the Clean strategy: a bare
// Var needs no ancilla or cleanup; anything else pops a scratch bit,
// compiles clean into it, and reports that bit as the (unreleased)
// result — only the ancillas consumed by its children are folded back.
func CompileCleanOop(h ancilla.Heap, e boolexpr.BExp) Result {
	if v, ok := e.(boolexpr.Var); ok {
		return Result{Heap: h, R: v.I, A: nil, C: nil}
	}
	h1, t := h.PopMin()
	r := CompileClean(h1, t, e)
	return Result{Heap: r.Heap, R: t, A: []int{t}, C: r.C}
}

// CompilePebbled differs from Compile only at And nodes (4.G.4): right
// after emitting the Toffoli it appends the reverse of the children's
// combined uncompute with respect to the Toffoli's own target t, and
// folds the children's ancillas back into the heap immediately. Every
// other case is identical to Compile.
func CompilePebbled(h ancilla.Heap, t int, e boolexpr.BExp) Result {
	switch x := e.(type) {
	case boolexpr.False:
		return Result{Heap: h, R: t, A: nil, C: nil}
	case boolexpr.Var:
		return Result{Heap: h, R: t, A: nil, C: gate.Circuit{gate.CNOT(x.I, t)}}
	case boolexpr.Xor:
		r1 := CompilePebbled(h, t, x.X)
		r2 := CompilePebbled(r1.Heap, t, x.Y)
		return Result{
			Heap: r2.Heap,
			R:    t,
			A:    append(append([]int{}, r1.A...), r2.A...),
			C:    gate.Concat(r1.C, r2.C),
		}
	case boolexpr.And:
		r1 := CompilePebbledOop(h, x.X)
		r2 := CompilePebbledOop(r1.Heap, x.Y)
		forward := gate.Concat(r1.C, r2.C, gate.Circuit{andGate(r1.R, r2.R, t)})
		u := gate.Reverse(gate.Uncompute(gate.Concat(r1.C, r2.C), t))
		borrowed := append(append([]int{}, r1.A...), r2.A...)
		h2 := ancilla.InsertAll(r2.Heap, borrowed)
		return Result{
			Heap: h2,
			R:    t,
			A:    nil,
			C:    gate.Concat(forward, u),
		}
	case boolexpr.Not:
		r1 := CompilePebbled(h, t, x.X)
		return Result{
			Heap: r1.Heap,
			R:    t,
			A:    r1.A,
			C:    gate.Concat(r1.C, gate.Circuit{gate.NOT(t)}),
		}
	default:
		panic(fmt.Sprintf("synth: unhandled node type %T", e))
	}
}

// CompilePebbledOop mirrors CompileOop under the Pebbled strategy.
func CompilePebbledOop(h ancilla.Heap, e boolexpr.BExp) Result {
	if v, ok := e.(boolexpr.Var); ok {
		return Result{Heap: h, R: v.I, A: nil, C: nil}
	}
	h1, t := h.PopMin()
	r := CompilePebbled(h1, t, e)
	return Result{
		Heap: r.Heap,
		R:    t,
		A:    append([]int{t}, r.A...),
		C:    r.C,
	}
}

// CompileBennettOop implements the deferred-mirror strategy (4.G.5).
// terms is the XOR-of-ANDs (ESOP) list of summands; each term is
// compiled out-of-place under CompileOop, forward circuits and per-term
// cleanups accumulate separately, and the final circuit is the forward
// circuits, then one CNOT per term into a freshly popped output bit,
// then all cleanups. Each cleanup is the reverse of the term's
// uncompute with respect to the term's own result bit, so it restores
// the term's inner scratch bits but not that result bit, which still
// holds the term's value afterwards. No ancilla is folded back into
// the heap: every allocation is reported live in A.
func CompileBennettOop(h ancilla.Heap, terms []boolexpr.BExp) Result {
	heap := h
	var forward gate.Circuit
	var cleanup gate.Circuit
	var allA []int
	var termBits []int
	for _, term := range terms {
		r := CompileOop(heap, term)
		heap = r.Heap
		forward = gate.Concat(forward, r.C)
		cleanup = gate.Concat(gate.Reverse(gate.Uncompute(r.C, r.R)), cleanup)
		allA = append(allA, r.A...)
		termBits = append(termBits, r.R)
	}
	h2, out := heap.PopMin()
	var xorC gate.Circuit
	for _, b := range termBits {
		xorC = append(xorC, gate.CNOT(b, out))
	}
	return Result{
		Heap: h2,
		R:    out,
		A:    append([]int{out}, allA...),
		C:    gate.Concat(forward, xorC, cleanup),
	}
}
