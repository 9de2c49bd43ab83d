package ast

import "math/big"

// Expression is the closed set of expression nodes.
type Expression interface {
	isExpression()
}

// Identifier references a definition, resolved against the enclosing function
// scope first and the file scope second.
type Identifier string

func (Identifier) isExpression() {}

// IntegerLiteral is a typed integer constant.
type IntegerLiteral struct {
	Type  IntegerType
	Value *big.Int
}

func (IntegerLiteral) isExpression() {}

type BooleanLiteral bool

func (BooleanLiteral) isExpression() {}

type FieldLiteral struct {
	Value *big.Int
}

func (FieldLiteral) isExpression() {}

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpEq
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	case OpEq:
		return "=="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	}
	panic("unknown binary operator")
}

type Binary struct {
	Op          BinaryOp
	Left, Right Expression
}

func (Binary) isExpression() {}

type Not struct {
	Operand Expression
}

func (Not) isExpression() {}

// Call invokes another function defined in the program.
type Call struct {
	Function  Identifier
	Arguments []Expression
}

func (Call) isExpression() {}
