package gadgets

import (
	"fmt"
	"math/big"

	"github.com/vicky2k/AleoLearning/r1cs"
)

// Field is a native field element in the circuit: a linear combination over
// allocated wires plus its value when one is known. Addition and subtraction
// are linear and free; multiplication and inversion cost constraints.
type Field struct {
	lc    r1cs.LinearCombination
	value *big.Int
}

// NewConstField returns the compile-time constant v, reduced into the field.
func NewConstField(s *r1cs.System, v *big.Int) Field {
	r := new(big.Int).Mod(v, s.Field().Field())
	return Field{lc: s.Constant(r), value: r}
}

// AllocField allocates one wire. A non-nil value assigns the wire and
// additionally pins it to the literal.
func AllocField(s *r1cs.System, value *big.Int) Field {
	var reduced *big.Int
	if value != nil {
		reduced = new(big.Int).Mod(value, s.Field().Field())
	}
	w := s.NewWitness(reduced)
	lcw := r1cs.NewLinear(w, s.Field().One())
	if reduced != nil {
		s.AddConstraint(s.Sub(lcw, s.Constant(reduced)), s.One(), nil)
	}
	return Field{lc: lcw, value: reduced}
}

// Value returns a copy of the known value, or nil.
func (a Field) Value() *big.Int {
	if a.value == nil {
		return nil
	}
	return new(big.Int).Set(a.value)
}

func (a Field) String() string {
	if a.value != nil {
		return a.value.String()
	}
	return "?"
}

// Add returns a+b. Linear, no constraint.
func (a Field) Add(s *r1cs.System, b Field) Field {
	return Field{lc: s.Add(a.lc, b.lc), value: fieldOp(s, a.value, b.value, new(big.Int).Add)}
}

// Sub returns a-b. Linear, no constraint.
func (a Field) Sub(s *r1cs.System, b Field) Field {
	return Field{lc: s.Sub(a.lc, b.lc), value: fieldOp(s, a.value, b.value, new(big.Int).Sub)}
}

// Mul returns a*b. Two constants fold; otherwise one constraint.
func (a Field) Mul(s *r1cs.System, b Field) Field {
	if a.lc.IsConstant() && b.lc.IsConstant() {
		return NewConstField(s, new(big.Int).Mul(a.value, b.value))
	}
	v := fieldOp(s, a.value, b.value, new(big.Int).Mul)
	return Field{lc: mulWire(s, a.lc, b.lc, v), value: v}
}

// Div returns a/b. A divisor known to be zero fails with ErrDivisionByZero;
// an unknown divisor is forced nonzero by the inverse constraint.
func (a Field) Div(s *r1cs.System, b Field) (Field, error) {
	if b.value != nil && b.value.Sign() == 0 {
		return Field{}, ErrDivisionByZero
	}
	var inv *big.Int
	if b.value != nil {
		inv = new(big.Int).ModInverse(b.value, s.Field().Field())
	}
	w := s.NewWitness(inv)
	invLc := r1cs.NewLinear(w, s.Field().One())
	// b * b^-1 = 1
	s.AddConstraint(b.lc, invLc, s.One())
	var v *big.Int
	if a.value != nil && inv != nil {
		v = new(big.Int).Mul(a.value, inv)
		v.Mod(v, s.Field().Field())
	}
	return Field{lc: mulWire(s, a.lc, invLc, v), value: v}, nil
}

// Eq is structural equality: known values compare by value, otherwise the
// combinations are compared. It never touches the constraint system.
func (a Field) Eq(b Field) bool {
	if a.value != nil && b.value != nil {
		return a.value.Cmp(b.value) == 0
	}
	return a.lc.Equal(b.lc)
}

// AssertEq appends a constraint forcing a == b. Two differing constants fail
// immediately with ErrAssertionFailed.
func (a Field) AssertEq(s *r1cs.System, b Field) error {
	if a.lc.IsConstant() && b.lc.IsConstant() {
		if a.value.Cmp(b.value) != 0 {
			return fmt.Errorf("%s != %s: %w", a, b, ErrAssertionFailed)
		}
		return nil
	}
	s.AddConstraint(s.Sub(a.lc, b.lc), s.One(), nil)
	return nil
}

func fieldOp(s *r1cs.System, a, b *big.Int, op func(x, y *big.Int) *big.Int) *big.Int {
	if a == nil || b == nil {
		return nil
	}
	r := op(a, b)
	return r.Mod(r, s.Field().Field())
}
