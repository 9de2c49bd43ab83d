package constraints

import (
	"fmt"
	"math/big"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/gadgets"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// Integer is the closed union over the five fixed widths. Each case wraps a
// width gadget whose bit length always equals the tag's declared width:
// allocation is width-specific and arithmetic only combines matched pairs.
type Integer interface {
	ConstrainedValue
	isInteger()
	gadget() gadgets.Uint
}

type U8 struct{ Uint gadgets.Uint }

func (U8) isConstrainedValue()      {}
func (U8) isInteger()               {}
func (u U8) gadget() gadgets.Uint   { return u.Uint }
func (u U8) String() string         { return u.Uint.String() + "u8" }

type U16 struct{ Uint gadgets.Uint }

func (U16) isConstrainedValue()     {}
func (U16) isInteger()              {}
func (u U16) gadget() gadgets.Uint  { return u.Uint }
func (u U16) String() string        { return u.Uint.String() + "u16" }

type U32 struct{ Uint gadgets.Uint }

func (U32) isConstrainedValue()     {}
func (U32) isInteger()              {}
func (u U32) gadget() gadgets.Uint  { return u.Uint }
func (u U32) String() string        { return u.Uint.String() + "u32" }

type U64 struct{ Uint gadgets.Uint }

func (U64) isConstrainedValue()     {}
func (U64) isInteger()              {}
func (u U64) gadget() gadgets.Uint  { return u.Uint }
func (u U64) String() string        { return u.Uint.String() + "u64" }

type U128 struct{ Uint gadgets.Uint }

func (U128) isConstrainedValue()    {}
func (U128) isInteger()             {}
func (u U128) gadget() gadgets.Uint { return u.Uint }
func (u U128) String() string       { return u.Uint.String() + "u128" }

// newInteger wraps a width gadget in the tag matching the declared type.
func newInteger(t ast.IntegerType, g gadgets.Uint) Integer {
	switch t {
	case ast.U8:
		return U8{Uint: g}
	case ast.U16:
		return U16{Uint: g}
	case ast.U32:
		return U32{Uint: g}
	case ast.U64:
		return U64{Uint: g}
	case ast.U128:
		return U128{Uint: g}
	}
	panic("unknown integer type")
}

// matchWidth pairs two integers of the same declared width. It is the single
// exhaustive dispatch site over the width tags: every integer operation goes
// through it, and a false return is the only source of width-mismatch
// failures.
func matchWidth(left, right Integer) (l, r gadgets.Uint, wrap func(gadgets.Uint) Integer, ok bool) {
	switch left.(type) {
	case U8:
		if _, ok := right.(U8); ok {
			return left.gadget(), right.gadget(), func(g gadgets.Uint) Integer { return U8{Uint: g} }, true
		}
	case U16:
		if _, ok := right.(U16); ok {
			return left.gadget(), right.gadget(), func(g gadgets.Uint) Integer { return U16{Uint: g} }, true
		}
	case U32:
		if _, ok := right.(U32); ok {
			return left.gadget(), right.gadget(), func(g gadgets.Uint) Integer { return U32{Uint: g} }, true
		}
	case U64:
		if _, ok := right.(U64); ok {
			return left.gadget(), right.gadget(), func(g gadgets.Uint) Integer { return U64{Uint: g} }, true
		}
	case U128:
		if _, ok := right.(U128); ok {
			return left.gadget(), right.gadget(), func(g gadgets.Uint) Integer { return U128{Uint: g} }, true
		}
	default:
		panic("unknown integer width")
	}
	return gadgets.Uint{}, gadgets.Uint{}, nil, false
}

// evaluateIntegerEq compares two integers without touching the constraint
// system. Used on constant-folding paths, never to enforce equality inside
// the circuit.
func evaluateIntegerEq(left, right Integer) (ConstrainedValue, error) {
	l, r, _, ok := matchWidth(left, right)
	if !ok {
		return nil, CannotEvaluateError{Expression: fmt.Sprintf("%s == %s", left, right)}
	}
	return Boolean{Value: gadgets.NewConstBool(l.Eq(r))}, nil
}

// enforceIntegerEq appends constraints forcing both integers equal.
func enforceIntegerEq(cs *r1cs.System, left, right Integer) error {
	l, r, _, ok := matchWidth(left, right)
	if !ok {
		return CannotEnforceError{Expression: fmt.Sprintf("%s == %s", left, right)}
	}
	return l.AssertEq(cs, r)
}

func enforceIntegerAdd(cs *r1cs.System, left, right Integer) (ConstrainedValue, error) {
	l, r, wrap, ok := matchWidth(left, right)
	if !ok {
		return nil, CannotEnforceError{Expression: fmt.Sprintf("%s + %s", left, right)}
	}
	res, err := l.Add(cs, r)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

func enforceIntegerSub(cs *r1cs.System, left, right Integer) (ConstrainedValue, error) {
	l, r, wrap, ok := matchWidth(left, right)
	if !ok {
		return nil, CannotEnforceError{Expression: fmt.Sprintf("%s - %s", left, right)}
	}
	res, err := l.Sub(cs, r)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

func enforceIntegerMul(cs *r1cs.System, left, right Integer) (ConstrainedValue, error) {
	l, r, wrap, ok := matchWidth(left, right)
	if !ok {
		return nil, CannotEnforceError{Expression: fmt.Sprintf("%s * %s", left, right)}
	}
	res, err := l.Mul(cs, r)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

func enforceIntegerDiv(cs *r1cs.System, left, right Integer) (ConstrainedValue, error) {
	l, r, wrap, ok := matchWidth(left, right)
	if !ok {
		return nil, CannotEnforceError{Expression: fmt.Sprintf("%s / %s", left, right)}
	}
	res, err := l.Div(cs, r)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

func enforceIntegerPow(cs *r1cs.System, left, right Integer) (ConstrainedValue, error) {
	l, r, wrap, ok := matchWidth(left, right)
	if !ok {
		return nil, CannotEnforceError{Expression: fmt.Sprintf("%s ** %s", left, right)}
	}
	res, err := l.Pow(cs, r)
	if err != nil {
		return nil, err
	}
	return wrap(res), nil
}

// integerConstant lowers a typed integer literal into a constant gadget.
func integerConstant(lit ast.IntegerLiteral) (ConstrainedValue, error) {
	g, err := gadgets.NewConstant(lit.Type.Bits(), lit.Value)
	if err != nil {
		return nil, err
	}
	return newInteger(lit.Type, g), nil
}

// integerFromParameter allocates an integer witness for one declared main
// parameter. A nil value allocates a free witness; a literal is range checked
// against the declared width, assigned to the wires and pinned.
func integerFromParameter(cs *r1cs.System, model ast.InputModel, value ast.InputValue) (ConstrainedValue, error) {
	integerType, ok := model.Type.(ast.IntegerType)
	if !ok {
		return nil, InvalidTypeError{Type: model.Type.String()}
	}

	var literal *big.Int
	if value != nil {
		input, ok := value.(ast.IntegerInput)
		if !ok {
			return nil, InvalidIntegerError{Type: model.Type.String(), Value: value.String()}
		}
		literal = input.Value
	}

	var g gadgets.Uint
	var err error
	switch integerType {
	case ast.U8:
		g, err = gadgets.AllocU8(cs, literal)
	case ast.U16:
		g, err = gadgets.AllocU16(cs, literal)
	case ast.U32:
		g, err = gadgets.AllocU32(cs, literal)
	case ast.U64:
		g, err = gadgets.AllocU64(cs, literal)
	case ast.U128:
		g, err = gadgets.AllocU128(cs, literal)
	default:
		panic("unknown integer type")
	}
	if err != nil {
		return nil, err
	}
	return newInteger(integerType, g), nil
}
