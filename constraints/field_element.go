package constraints

import (
	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/gadgets"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// evaluateFieldEq compares two field elements without touching the
// constraint system.
func evaluateFieldEq(left, right Field) ConstrainedValue {
	return Boolean{Value: gadgets.NewConstBool(left.Value.Eq(right.Value))}
}

// enforceFieldEq appends constraints forcing both field elements equal.
func enforceFieldEq(cs *r1cs.System, left, right Field) error {
	return left.Value.AssertEq(cs, right.Value)
}

func enforceFieldAdd(cs *r1cs.System, left, right Field) ConstrainedValue {
	return Field{Value: left.Value.Add(cs, right.Value)}
}

func enforceFieldSub(cs *r1cs.System, left, right Field) ConstrainedValue {
	return Field{Value: left.Value.Sub(cs, right.Value)}
}

func enforceFieldMul(cs *r1cs.System, left, right Field) ConstrainedValue {
	return Field{Value: left.Value.Mul(cs, right.Value)}
}

func enforceFieldDiv(cs *r1cs.System, left, right Field) (ConstrainedValue, error) {
	res, err := left.Value.Div(cs, right.Value)
	if err != nil {
		return nil, err
	}
	return Field{Value: res}, nil
}

// fieldFromParameter allocates a field witness for one declared main
// parameter. A nil value allocates a free witness; a literal is assigned and
// pinned.
func fieldFromParameter(cs *r1cs.System, model ast.InputModel, value ast.InputValue) (ConstrainedValue, error) {
	if _, ok := model.Type.(ast.FieldType); !ok {
		return nil, InvalidTypeError{Type: model.Type.String()}
	}

	if value == nil {
		return Field{Value: gadgets.AllocField(cs, nil)}, nil
	}
	input, ok := value.(ast.FieldInput)
	if !ok {
		return nil, InvalidFieldError{Value: value.String()}
	}
	return Field{Value: gadgets.AllocField(cs, input.Value)}, nil
}
