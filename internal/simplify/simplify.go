// Package simplify implements a one-pass bottom-up peephole rewrite of
// boolexpr.BExp trees, collapsing the identities a synthesized circuit
// would otherwise pay gates for.
package simplify

import "github.com/revsynth/revsynth/internal/boolexpr"

// Simplify rewrites e bottom-up, applying each rule once per node after
// its children have already been simplified. It is not a fixpoint: a
// rewrite that exposes a further opportunity one level up is caught by
// this same bottom-up pass, but nested exposure more than one level
// deep is not chased.
func Simplify(e boolexpr.BExp) boolexpr.BExp {
	switch t := e.(type) {
	case boolexpr.False:
		return t
	case boolexpr.Var:
		return t
	case boolexpr.Not:
		return simplifyNot(boolexpr.Not{X: Simplify(t.X)})
	case boolexpr.And:
		return simplifyAnd(boolexpr.And{X: Simplify(t.X), Y: Simplify(t.Y)})
	case boolexpr.Xor:
		return simplifyXor(boolexpr.Xor{X: Simplify(t.X), Y: Simplify(t.Y)})
	default:
		return e
	}
}

// simplifyNot collapses double negation: not(not(x)) -> x.
func simplifyNot(n boolexpr.Not) boolexpr.BExp {
	if inner, ok := n.X.(boolexpr.Not); ok {
		return inner.X
	}
	return n
}

// simplifyAnd applies and(false,_) -> false in both argument orders,
// flat idempotence and(x,x) -> x, and the four nested-idempotence
// rotations and(x,and(x,z))->and(x,z), and(x,and(z,x))->and(z,x),
// and(and(x,z),x)->and(x,z), and(and(z,x),x)->and(z,x).
func simplifyAnd(a boolexpr.And) boolexpr.BExp {
	if _, ok := a.X.(boolexpr.False); ok {
		return boolexpr.False{}
	}
	if _, ok := a.Y.(boolexpr.False); ok {
		return boolexpr.False{}
	}
	if boolexpr.Equal(a.X, a.Y) {
		return a.X
	}
	if inner, ok := a.Y.(boolexpr.And); ok {
		if boolexpr.Equal(a.X, inner.X) || boolexpr.Equal(a.X, inner.Y) {
			return inner
		}
	}
	if inner, ok := a.X.(boolexpr.And); ok {
		if boolexpr.Equal(a.Y, inner.X) || boolexpr.Equal(a.Y, inner.Y) {
			return inner
		}
	}
	return a
}

// simplifyXor applies xor(false,z) -> z (and its mirror), then checks
// the four self-cancellation rotations xor(x,x)->false,
// xor(x,xor(x,y))->y, xor(xor(x,y),x)->y, xor(xor(x,y),y)->x (and the
// symmetric xor(y,xor(x,y))->x).
func simplifyXor(x boolexpr.Xor) boolexpr.BExp {
	if _, ok := x.X.(boolexpr.False); ok {
		return x.Y
	}
	if _, ok := x.Y.(boolexpr.False); ok {
		return x.X
	}
	if boolexpr.Equal(x.X, x.Y) {
		return boolexpr.False{}
	}
	if inner, ok := x.Y.(boolexpr.Xor); ok {
		if boolexpr.Equal(x.X, inner.X) {
			return inner.Y
		}
		if boolexpr.Equal(x.X, inner.Y) {
			return inner.X
		}
	}
	if inner, ok := x.X.(boolexpr.Xor); ok {
		if boolexpr.Equal(x.Y, inner.X) {
			return inner.Y
		}
		if boolexpr.Equal(x.Y, inner.Y) {
			return inner.X
		}
	}
	return x
}
