package gate

import "github.com/revsynth/revsynth/internal/bitid"

// State is a total mapping from bit identifier to Boolean, supplied by
// the caller for evaluation and testing. The synthesiser itself never
// inspects a State — only Eval/EvalCircuit (and tests) do.
type State struct {
	m bitid.TotalMap[bool]
}

// NewState returns the all-zero state.
func NewState() State {
	return State{m: bitid.NewTotalMap(false)}
}

// Get returns the value of bit i, defaulting to false.
func (s State) Get(i int) bool {
	return s.m.Get(i)
}

// Set returns a new State with bit i set to v; s is left untouched.
func (s State) Set(i int, v bool) State {
	return State{m: s.m.Set(i, v)}
}

// Flip returns a new State with bit i toggled.
func (s State) Flip(i int) State {
	return s.Set(i, !s.Get(i))
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	return State{m: s.m.Clone()}
}

// ZeroOn reports whether every bit identifier in elts currently reads 0
// in s.
func (s State) ZeroOn(elts []int) bool {
	for _, i := range elts {
		if s.Get(i) {
			return false
		}
	}
	return true
}
