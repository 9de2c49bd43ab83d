// Package r1cs holds the mutable constraint system every enforcing operation
// appends to: an ordered list of rank-1 constraints over a prime field,
// together with an optional witness assignment per wire.
//
// The system is deliberately single-threaded. One exclusive handle is passed
// down the call chain, so constraints are appended in a single well-defined
// order; generating twice from the same input yields an identical sequence.
package r1cs

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/vicky2k/AleoLearning/field"
)

// R1C is one rank-1 constraint: L * R = O.
type R1C struct {
	L, R, O LinearCombination
}

func (c R1C) String(f field.Field) string {
	return "(" + c.L.String(f) + ") * (" + c.R.String(f) + ") = (" + c.O.String(f) + ")"
}

// System accumulates rank-1 constraints and witness assignments for one
// generation. Wire 0 is the constant wire, always assigned one.
type System struct {
	field       field.Field
	constraints []R1C
	values      []constraint.Element
	assigned    []bool
}

func NewSystem(f field.Field) *System {
	s := &System{field: f}
	s.values = append(s.values, f.One())
	s.assigned = append(s.assigned, true)
	return s
}

func (s *System) Field() field.Field {
	return s.field
}

// One returns the linear combination for the constant 1.
func (s *System) One() LinearCombination {
	return NewLinear(0, s.field.One())
}

// Constant returns the linear combination for the given constant. Accepts
// anything the field can convert (big.Int, machine integers, strings).
func (s *System) Constant(i interface{}) LinearCombination {
	return NewConstant(s.field.FromInterface(i))
}

// NewWitness allocates a wire. A nil value allocates a free witness, used
// when building circuit topology without an execution trace.
func (s *System) NewWitness(value *big.Int) int {
	vid := len(s.values)
	if value != nil {
		s.values = append(s.values, s.field.FromInterface(value))
		s.assigned = append(s.assigned, true)
	} else {
		s.values = append(s.values, constraint.Element{})
		s.assigned = append(s.assigned, false)
	}
	return vid
}

// AddConstraint appends L * R = O to the system.
func (s *System) AddConstraint(l, r, o LinearCombination) {
	s.constraints = append(s.constraints, R1C{L: l, R: r, O: o})
}

func (s *System) NbConstraints() int {
	return len(s.constraints)
}

// NbWitnesses returns the number of allocated wires, excluding the constant
// wire.
func (s *System) NbWitnesses() int {
	return len(s.values) - 1
}

func (s *System) Constraints() []R1C {
	return s.constraints
}

// WitnessValue returns the assignment of the given wire, if any.
func (s *System) WitnessValue(vid int) (constraint.Element, bool) {
	if !s.assigned[vid] {
		return constraint.Element{}, false
	}
	return s.values[vid], true
}

// Eval evaluates a combination over the current assignment. The second return
// is false if the combination touches an unassigned wire.
func (s *System) Eval(e LinearCombination) (constraint.Element, bool) {
	res := constraint.Element{}
	for _, t := range e {
		if !s.assigned[t.VID] {
			return constraint.Element{}, false
		}
		res = s.field.Add(res, s.field.Mul(t.Coeff, s.values[t.VID]))
	}
	return res, true
}

// CheckSatisfied evaluates every constraint over the witness. It fails on the
// first constraint that touches an unassigned wire or does not hold.
func (s *System) CheckSatisfied() error {
	for i, c := range s.constraints {
		l, ok := s.Eval(c.L)
		if !ok {
			return fmt.Errorf("constraint %d: unassigned wire in %s", i, c.String(s.field))
		}
		r, ok := s.Eval(c.R)
		if !ok {
			return fmt.Errorf("constraint %d: unassigned wire in %s", i, c.String(s.field))
		}
		o, ok := s.Eval(c.O)
		if !ok {
			return fmt.Errorf("constraint %d: unassigned wire in %s", i, c.String(s.field))
		}
		if s.field.Mul(l, r) != o {
			return fmt.Errorf("constraint %d not satisfied: %s", i, c.String(s.field))
		}
	}
	return nil
}
