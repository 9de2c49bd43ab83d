package gadgets

import (
	"fmt"
	"math/big"

	"github.com/vicky2k/AleoLearning/r1cs"
)

// Boolean is a circuit boolean: either a known constant, or a linear
// combination over boolean-constrained wires together with its witness value
// when one is known.
type Boolean struct {
	isConst bool
	c       bool
	lc      r1cs.LinearCombination
	value   *bool
}

// NewConstBool returns the compile-time constant b. It carries no wires and
// never costs a constraint.
func NewConstBool(b bool) Boolean {
	return Boolean{isConst: true, c: b}
}

// AllocBool allocates one wire constrained to be 0 or 1. A non-nil value
// assigns the wire and additionally pins it to the literal.
func AllocBool(s *r1cs.System, value *bool) Boolean {
	var bv *big.Int
	if value != nil {
		bv = big.NewInt(0)
		if *value {
			bv = big.NewInt(1)
		}
	}
	w := s.NewWitness(bv)
	lcw := r1cs.NewLinear(w, s.Field().One())
	s.AddConstraint(lcw, lcw, lcw)
	var v *bool
	if value != nil {
		t := *value
		v = &t
		s.AddConstraint(s.Sub(lcw, s.Constant(bv)), s.One(), nil)
	}
	return Boolean{lc: lcw, value: v}
}

// Lc returns the boolean as a linear combination.
func (b Boolean) Lc(s *r1cs.System) r1cs.LinearCombination {
	if b.isConst {
		if b.c {
			return s.One()
		}
		return nil
	}
	return b.lc
}

// Constant reports whether the boolean is a compile-time constant, and its
// value if so.
func (b Boolean) Constant() (bool, bool) {
	return b.c, b.isConst
}

// Value returns the known value of the boolean, constant or witnessed.
func (b Boolean) Value() (bool, bool) {
	if b.isConst {
		return b.c, true
	}
	if b.value != nil {
		return *b.value, true
	}
	return false, false
}

// Eq is structural equality: constants compare by value, allocated booleans
// by their combinations. It never touches the constraint system.
func (b Boolean) Eq(o Boolean) bool {
	if b.isConst != o.isConst {
		return false
	}
	if b.isConst {
		return b.c == o.c
	}
	return b.lc.Equal(o.lc)
}

// AssertEq appends a constraint forcing b == o. Two differing constants fail
// immediately with ErrAssertionFailed.
func (b Boolean) AssertEq(s *r1cs.System, o Boolean) error {
	if b.isConst && o.isConst {
		if b.c != o.c {
			return fmt.Errorf("%s != %s: %w", b, o, ErrAssertionFailed)
		}
		return nil
	}
	s.AddConstraint(s.Sub(b.Lc(s), o.Lc(s)), s.One(), nil)
	return nil
}

func (b Boolean) String() string {
	if v, ok := b.Value(); ok {
		if v {
			return "true"
		}
		return "false"
	}
	return "?"
}

// Not returns !b. It is linear and never costs a constraint.
func Not(s *r1cs.System, b Boolean) Boolean {
	if b.isConst {
		return NewConstBool(!b.c)
	}
	var v *bool
	if b.value != nil {
		t := !*b.value
		v = &t
	}
	return Boolean{lc: s.Sub(s.One(), b.lc), value: v}
}

// And returns a && b, one constraint on non-constant operands.
func And(s *r1cs.System, a, b Boolean) Boolean {
	if a.isConst {
		if !a.c {
			return NewConstBool(false)
		}
		return b
	}
	if b.isConst {
		return And(s, b, a)
	}
	var pv *big.Int
	var v *bool
	if a.value != nil && b.value != nil {
		t := *a.value && *b.value
		v = &t
		pv = big.NewInt(0)
		if t {
			pv = big.NewInt(1)
		}
	}
	w := s.NewWitness(pv)
	out := r1cs.NewLinear(w, s.Field().One())
	s.AddConstraint(a.lc, b.lc, out)
	return Boolean{lc: out, value: v}
}

// Or returns a || b, one constraint on non-constant operands.
func Or(s *r1cs.System, a, b Boolean) Boolean {
	if a.isConst {
		if a.c {
			return NewConstBool(true)
		}
		return b
	}
	if b.isConst {
		return Or(s, b, a)
	}
	var pv *big.Int
	var v *bool
	if a.value != nil && b.value != nil {
		both := *a.value && *b.value
		t := *a.value || *b.value
		v = &t
		pv = big.NewInt(0)
		if both {
			pv = big.NewInt(1)
		}
	}
	// a || b = a + b - a*b
	w := s.NewWitness(pv)
	ab := r1cs.NewLinear(w, s.Field().One())
	s.AddConstraint(a.lc, b.lc, ab)
	return Boolean{lc: s.Sub(s.Add(a.lc, b.lc), ab), value: v}
}
