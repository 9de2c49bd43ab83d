// Package ast is the resolved, typed program representation the constraint
// generator consumes. Parsing and type checking happen upstream; everything
// here is assumed name-resolved and type-correct.
package ast

import "fmt"

// Type is the closed set of static types a declaration can carry.
type Type interface {
	isType()
	fmt.Stringer
}

// IntegerType is one of the five fixed integer widths.
type IntegerType uint8

const (
	U8 IntegerType = iota
	U16
	U32
	U64
	U128
)

func (IntegerType) isType() {}

func (t IntegerType) String() string {
	switch t {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	}
	panic("unknown integer type")
}

// Bits returns the declared width.
func (t IntegerType) Bits() int {
	switch t {
	case U8:
		return 8
	case U16:
		return 16
	case U32:
		return 32
	case U64:
		return 64
	case U128:
		return 128
	}
	panic("unknown integer type")
}

type BooleanType struct{}

func (BooleanType) isType() {}

func (BooleanType) String() string { return "bool" }

type FieldType struct{}

func (FieldType) isType() {}

func (FieldType) String() string { return "field" }
