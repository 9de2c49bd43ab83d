package constraints

import (
	"fmt"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/gadgets"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// evaluateBooleanEq compares two booleans without touching the constraint
// system.
func evaluateBooleanEq(left, right Boolean) ConstrainedValue {
	return Boolean{Value: gadgets.NewConstBool(left.Value.Eq(right.Value))}
}

// enforceBooleanEq appends constraints forcing both booleans equal.
func enforceBooleanEq(cs *r1cs.System, left, right Boolean) error {
	return left.Value.AssertEq(cs, right.Value)
}

func enforceNot(cs *r1cs.System, operand ConstrainedValue) (ConstrainedValue, error) {
	b, ok := operand.(Boolean)
	if !ok {
		return nil, CannotEnforceError{Expression: fmt.Sprintf("!%s", operand)}
	}
	return Boolean{Value: gadgets.Not(cs, b.Value)}, nil
}

func enforceAnd(cs *r1cs.System, left, right Boolean) ConstrainedValue {
	return Boolean{Value: gadgets.And(cs, left.Value, right.Value)}
}

func enforceOr(cs *r1cs.System, left, right Boolean) ConstrainedValue {
	return Boolean{Value: gadgets.Or(cs, left.Value, right.Value)}
}

// booleanFromParameter allocates a boolean witness for one declared main
// parameter. A nil value allocates a free witness; a literal is assigned and
// pinned.
func booleanFromParameter(cs *r1cs.System, model ast.InputModel, value ast.InputValue) (ConstrainedValue, error) {
	if _, ok := model.Type.(ast.BooleanType); !ok {
		return nil, InvalidTypeError{Type: model.Type.String()}
	}

	var literal *bool
	if value != nil {
		input, ok := value.(ast.BooleanInput)
		if !ok {
			return nil, InvalidBooleanError{Value: value.String()}
		}
		b := bool(input)
		literal = &b
	}

	return Boolean{Value: gadgets.AllocBool(cs, literal)}, nil
}
