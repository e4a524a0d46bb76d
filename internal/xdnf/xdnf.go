// Package xdnf implements the XOR-of-AND (ESOP) normal form: pushing
// AND through XOR via Distrib/ToXDNF, the partial inverse UnXDNF that
// re-factors shared conjuncts, and an auxiliary list-of-cubes ESOP
// representation for algebraic manipulation.
package xdnf

import "github.com/revsynth/revsynth/internal/boolexpr"

// Distrib distributes conjunction over exclusive-or when either
// argument is itself an Xor node; otherwise it returns a plain And.
func Distrib(x, y boolexpr.BExp) boolexpr.BExp {
	if xx, ok := x.(boolexpr.Xor); ok {
		return boolexpr.Xor{X: Distrib(xx.X, y), Y: Distrib(xx.Y, y)}
	}
	if yy, ok := y.(boolexpr.Xor); ok {
		return boolexpr.Xor{X: Distrib(x, yy.X), Y: Distrib(x, yy.Y)}
	}
	return boolexpr.And{X: x, Y: y}
}

// ToXDNF pushes every And through every Xor beneath it and rewrites
// Not(x) as Xor(True, toXDNF(x)) (True represented as Not(False)),
// yielding an XOR of AND-of-literals semantically equal to e.
func ToXDNF(e boolexpr.BExp) boolexpr.BExp {
	switch t := e.(type) {
	case boolexpr.False:
		return t
	case boolexpr.Var:
		return t
	case boolexpr.Not:
		return boolexpr.Xor{X: boolexpr.Not{X: boolexpr.False{}}, Y: ToXDNF(t.X)}
	case boolexpr.And:
		return Distrib(ToXDNF(t.X), ToXDNF(t.Y))
	case boolexpr.Xor:
		return boolexpr.Xor{X: ToXDNF(t.X), Y: ToXDNF(t.Y)}
	default:
		return e
	}
}

// UnXDNF is a partial inverse of ToXDNF: it re-factors a shared
// conjunct out of an Xor of two Ands, in all four argument-position
// combinations, and recurses into children first.
func UnXDNF(e boolexpr.BExp) boolexpr.BExp {
	switch t := e.(type) {
	case boolexpr.False:
		return t
	case boolexpr.Var:
		return t
	case boolexpr.Not:
		return boolexpr.Not{X: UnXDNF(t.X)}
	case boolexpr.And:
		return boolexpr.And{X: UnXDNF(t.X), Y: UnXDNF(t.Y)}
	case boolexpr.Xor:
		x, y := UnXDNF(t.X), UnXDNF(t.Y)
		ax, xok := x.(boolexpr.And)
		ay, yok := y.(boolexpr.And)
		if xok && yok {
			if boolexpr.Equal(ax.X, ay.X) {
				return boolexpr.And{X: ax.X, Y: boolexpr.Xor{X: ax.Y, Y: ay.Y}}
			}
			if boolexpr.Equal(ax.X, ay.Y) {
				return boolexpr.And{X: ax.X, Y: boolexpr.Xor{X: ax.Y, Y: ay.X}}
			}
			if boolexpr.Equal(ax.Y, ay.X) {
				return boolexpr.And{X: ax.Y, Y: boolexpr.Xor{X: ax.X, Y: ay.Y}}
			}
			if boolexpr.Equal(ax.Y, ay.Y) {
				return boolexpr.And{X: ax.Y, Y: boolexpr.Xor{X: ax.X, Y: ay.X}}
			}
		}
		return boolexpr.Xor{X: x, Y: y}
	default:
		return e
	}
}
