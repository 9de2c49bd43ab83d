package ast

import (
	"fmt"
	"math/big"
)

// InputModel declares one parameter of the main function: its name and static
// type. Created once during program resolution and immutable thereafter.
type InputModel struct {
	Name string
	Type Type
}

// InputValue is a caller-supplied literal for one declared parameter. A nil
// InputValue in a parameter list means "allocate a free witness of the
// declared type".
type InputValue interface {
	isInputValue()
	fmt.Stringer
}

// IntegerInput is an untyped integer literal; the declared parameter type
// fixes its width.
type IntegerInput struct {
	Value *big.Int
}

func (IntegerInput) isInputValue() {}

func (i IntegerInput) String() string { return i.Value.String() }

// Integer is shorthand for a small integer input.
func Integer(v uint64) IntegerInput {
	return IntegerInput{Value: new(big.Int).SetUint64(v)}
}

type BooleanInput bool

func (BooleanInput) isInputValue() {}

func (b BooleanInput) String() string {
	if b {
		return "true"
	}
	return "false"
}

type FieldInput struct {
	Value *big.Int
}

func (FieldInput) isInputValue() {}

func (f FieldInput) String() string { return f.Value.String() + "field" }
