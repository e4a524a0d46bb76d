// Package boolexpr implements the Boolean expression IR: a finite tree
// over {False, Var, Not, And, Xor}, its derived attributes (free
// variables, AND-depth, substitution), and its two-valued semantics.
package boolexpr

import (
	"fmt"
	"strings"

	"github.com/revsynth/revsynth/internal/bitid"
)

// BExp is a Boolean expression: one of False, Var, Not, And, Xor.
// The unexported marker method closes the set of implementations to
// this package, the idiomatic Go substitute for a sum type.
type BExp interface {
	isBExp()
}

// False is the Boolean constant false.
type False struct{}

// Var is a reference to bit identifier I.
type Var struct{ I int }

// Not negates X.
type Not struct{ X BExp }

// And is the conjunction of X and Y.
type And struct{ X, Y BExp }

// Xor is the exclusive-or of X and Y.
type Xor struct{ X, Y BExp }

func (False) isBExp() {}
func (Var) isBExp()   {}
func (Not) isBExp()   {}
func (And) isBExp()   {}
func (Xor) isBExp()   {}

// Eval evaluates e under state st (any total bit-identifier -> bool
// lookup).
func Eval(e BExp, st func(int) bool) bool {
	switch t := e.(type) {
	case False:
		return false
	case Var:
		return st(t.I)
	case Not:
		return !Eval(t.X, st)
	case And:
		return Eval(t.X, st) && Eval(t.Y, st)
	case Xor:
		return Eval(t.X, st) != Eval(t.Y, st)
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", e))
	}
}

// Vars returns the set of free variables occurring in e.
func Vars(e BExp) bitid.Set {
	switch t := e.(type) {
	case False:
		return bitid.Set{}
	case Var:
		return bitid.NewSet(t.I)
	case Not:
		return Vars(t.X)
	case And:
		return bitid.Union(Vars(t.X), Vars(t.Y))
	case Xor:
		return bitid.Union(Vars(t.X), Vars(t.Y))
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", e))
	}
}

// VarMax returns the maximum variable index occurring in e, or 0 for a
// closed expression.
func VarMax(e BExp) int {
	max := 0
	for _, v := range Vars(e).Slice() {
		if v > max {
			max = v
		}
	}
	return max
}

// Occurs reports whether bit identifier i occurs as a Var anywhere in e.
func Occurs(i int, e BExp) bool {
	return Vars(e).Has(i)
}

// AndDepth returns the maximum number of And nodes on any root-to-leaf
// path: Not is transparent, Xor takes the max of its children, And adds
// one, leaves are zero.
func AndDepth(e BExp) int {
	switch t := e.(type) {
	case False, Var:
		return 0
	case Not:
		return AndDepth(t.X)
	case And:
		return 1 + max(AndDepth(t.X), AndDepth(t.Y))
	case Xor:
		return max(AndDepth(t.X), AndDepth(t.Y))
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", e))
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Equal reports whether a and b are structurally identical expressions.
func Equal(a, b BExp) bool {
	switch x := a.(type) {
	case False:
		_, ok := b.(False)
		return ok
	case Var:
		y, ok := b.(Var)
		return ok && x.I == y.I
	case Not:
		y, ok := b.(Not)
		return ok && Equal(x.X, y.X)
	case And:
		y, ok := b.(And)
		return ok && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case Xor:
		y, ok := b.(Xor)
		return ok && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", a))
	}
}

// SubstBExp replaces every Var(i) in e with sigma(i), or leaves it
// unchanged if sigma has no entry for i.
func SubstBExp(e BExp, sigma map[int]BExp) BExp {
	switch t := e.(type) {
	case False:
		return t
	case Var:
		if r, ok := sigma[t.I]; ok {
			return r
		}
		return t
	case Not:
		return Not{SubstBExp(t.X, sigma)}
	case And:
		return And{SubstBExp(t.X, sigma), SubstBExp(t.Y, sigma)}
	case Xor:
		return Xor{SubstBExp(t.X, sigma), SubstBExp(t.Y, sigma)}
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", e))
	}
}

// SubstVar renames every Var(i) in e to Var(sigma(i)), leaving it
// unchanged if sigma has no entry for i.
func SubstVar(e BExp, sigma map[int]int) BExp {
	switch t := e.(type) {
	case False:
		return t
	case Var:
		if r, ok := sigma[t.I]; ok {
			return Var{r}
		}
		return t
	case Not:
		return Not{SubstVar(t.X, sigma)}
	case And:
		return And{SubstVar(t.X, sigma), SubstVar(t.Y, sigma)}
	case Xor:
		return Xor{SubstVar(t.X, sigma), SubstVar(t.Y, sigma)}
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", e))
	}
}

// PrettyPrint renders e in the module's own literal syntax, the same
// grammar Parse reads back.
func PrettyPrint(e BExp) string {
	var b strings.Builder
	prettyPrint(&b, e)
	return b.String()
}

func prettyPrint(b *strings.Builder, e BExp) {
	switch t := e.(type) {
	case False:
		b.WriteString("false")
	case Var:
		fmt.Fprintf(b, "(var %d)", t.I)
	case Not:
		b.WriteString("(not ")
		prettyPrint(b, t.X)
		b.WriteString(")")
	case And:
		b.WriteString("(and ")
		prettyPrint(b, t.X)
		b.WriteString(" ")
		prettyPrint(b, t.Y)
		b.WriteString(")")
	case Xor:
		b.WriteString("(xor ")
		prettyPrint(b, t.X)
		b.WriteString(" ")
		prettyPrint(b, t.Y)
		b.WriteString(")")
	default:
		panic(fmt.Sprintf("boolexpr: unhandled node type %T", e))
	}
}
