// Package constraints lowers a resolved program into rank-1 constraints. It
// carries the constrained-value model, one constraint subsystem per value
// kind, and the driver that resolves top-level definitions and enforces the
// main function.
package constraints

import (
	"fmt"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/gadgets"
)

// ConstrainedValue is the closed set of runtime values a circuit can carry.
// Exactly one case is active at a time; a value never changes kind.
type ConstrainedValue interface {
	isConstrainedValue()
	fmt.Stringer
}

// Boolean is a circuit boolean value.
type Boolean struct {
	Value gadgets.Boolean
}

func (Boolean) isConstrainedValue() {}

func (b Boolean) String() string { return b.Value.String() }

// Field is a native field element value.
type Field struct {
	Value gadgets.Field
}

func (Field) isConstrainedValue() {}

func (f Field) String() string { return f.Value.String() + "field" }

// Function is a resolved function definition, callable during enforcement.
// It is not itself constrained.
type Function struct {
	Scope      string
	Definition ast.Function
}

func (Function) isConstrainedValue() {}

func (f Function) String() string { return "function " + f.Definition.Name }
