package gate

import "github.com/revsynth/revsynth/internal/bitid"

// Circuit is an ordered sequence of gates, applied left to right.
type Circuit []Gate

// EvalCircuit folds Eval over c starting from st, returning the
// resulting state. st itself is never mutated.
func EvalCircuit(c Circuit, st State) State {
	for _, g := range c {
		st = Eval(g, st)
	}
	return st
}

// Uses returns the union of every gate's Uses in c.
func Uses(c Circuit) bitid.Set {
	out := bitid.Set{}
	for _, g := range c {
		out = bitid.Union(out, g.Uses())
	}
	return out
}

// Ctrls returns the union of every gate's Ctrls in c.
func Ctrls(c Circuit) bitid.Set {
	out := bitid.Set{}
	for _, g := range c {
		out = bitid.Union(out, g.Ctrls())
	}
	return out
}

// Mods returns the union of every gate's Mods in c.
func Mods(c Circuit) bitid.Set {
	out := bitid.Set{}
	for _, g := range c {
		out = bitid.Union(out, g.Mods())
	}
	return out
}

// WellFormed reports whether every gate in c is individually
// well-formed.
func WellFormed(c Circuit) bool {
	for _, g := range c {
		if !g.WellFormed() {
			return false
		}
	}
	return true
}

// Reverse returns c with its gates in reverse order. Every gate is its
// own inverse, so the reversed sequence is the circuit's inverse.
func Reverse(c Circuit) Circuit {
	out := make(Circuit, len(c))
	for i, g := range c {
		out[len(c)-1-i] = g
	}
	return out
}

// Uncompute returns the subsequence of c that does not target r. Its
// reversal cancels c's side effects on every bit other than r,
// provided r is never used as a control in c.
func Uncompute(c Circuit, r int) Circuit {
	var out Circuit
	for _, g := range c {
		if g.Target != r {
			out = append(out, g)
		}
	}
	return out
}

// Concat appends cs in order into a single circuit.
func Concat(cs ...Circuit) Circuit {
	var out Circuit
	for _, c := range cs {
		out = append(out, c...)
	}
	return out
}
