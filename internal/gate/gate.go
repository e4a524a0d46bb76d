// Package gate implements the reversible gate IR: NOT, CNOT and
// Toffoli gates, their semantics over a State, well-formedness, and
// circuit-level uses/ctrls/mods and uncompute.
package gate

import "github.com/revsynth/revsynth/internal/bitid"

// Kind identifies which of the three reversible gates a Gate is.
type Kind uint8

const (
	KindNOT Kind = iota
	KindCNOT
	KindTOFF
)

func (k Kind) String() string {
	switch k {
	case KindNOT:
		return "NOT"
	case KindCNOT:
		return "CNOT"
	case KindTOFF:
		return "TOFF"
	default:
		return "?"
	}
}

// NoCtrl marks an unused control slot.
const NoCtrl = -1

// Gate is one reversible gate. For KindNOT, C1 and C2 are NoCtrl. For
// KindCNOT, C1 is the single control and C2 is NoCtrl. For KindTOFF,
// both C1 and C2 are controls.
type Gate struct {
	Kind   Kind
	C1, C2 int
	Target int
}

// NOT builds a NOT gate flipping bit a.
func NOT(a int) Gate {
	return Gate{Kind: KindNOT, C1: NoCtrl, C2: NoCtrl, Target: a}
}

// CNOT builds a controlled-NOT gate flipping a iff c is set.
func CNOT(c, a int) Gate {
	return Gate{Kind: KindCNOT, C1: c, C2: NoCtrl, Target: a}
}

// TOFF builds a doubly-controlled NOT (Toffoli) gate flipping a iff
// both c1 and c2 are set.
func TOFF(c1, c2, a int) Gate {
	return Gate{Kind: KindTOFF, C1: c1, C2: c2, Target: a}
}

// Uses returns every bit mentioned by g (controls and target).
func (g Gate) Uses() bitid.Set {
	return bitid.Union(g.Ctrls(), bitid.NewSet(g.Target))
}

// Ctrls returns g's non-target bits.
func (g Gate) Ctrls() bitid.Set {
	switch g.Kind {
	case KindNOT:
		return bitid.Set{}
	case KindCNOT:
		return bitid.NewSet(g.C1)
	case KindTOFF:
		return bitid.NewSet(g.C1, g.C2)
	default:
		return bitid.Set{}
	}
}

// Mods returns g's single target bit.
func (g Gate) Mods() bitid.Set {
	return bitid.NewSet(g.Target)
}

// WellFormed reports whether g's controls and target are pairwise
// distinct.
func (g Gate) WellFormed() bool {
	switch g.Kind {
	case KindNOT:
		return true
	case KindCNOT:
		return g.C1 != g.Target
	case KindTOFF:
		return g.C1 != g.C2 && g.C1 != g.Target && g.C2 != g.Target
	default:
		return false
	}
}

// Eval applies g to st, returning the resulting state.
func Eval(g Gate, st State) State {
	switch g.Kind {
	case KindNOT:
		return st.Flip(g.Target)
	case KindCNOT:
		if st.Get(g.C1) {
			return st.Flip(g.Target)
		}
		return st
	case KindTOFF:
		if st.Get(g.C1) && st.Get(g.C2) {
			return st.Flip(g.Target)
		}
		return st
	default:
		return st
	}
}
