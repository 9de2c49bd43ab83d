package constraints

import (
	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// enforceFunction binds already-evaluated argument values to the declared
// parameters and lowers the body statement by statement.
func (p *ConstrainedProgram) enforceFunction(cs *r1cs.System, fileScope string, function ast.Function, args []ConstrainedValue) (ConstrainedValue, error) {
	if len(args) != len(function.Parameters) {
		return nil, ArityError{
			Function: function.Name,
			Expected: len(function.Parameters),
			Got:      len(args),
		}
	}
	functionScope := newScope(fileScope, function.Name)
	for i, model := range function.Parameters {
		p.store(newScope(functionScope, model.Name), args[i])
	}
	for _, statement := range function.Body {
		value, returned, err := p.enforceStatement(cs, fileScope, functionScope, statement)
		if err != nil {
			return nil, err
		}
		if returned {
			return value, nil
		}
	}
	return nil, MissingReturnError{Function: function.Name}
}

// enforceMainFunction allocates the declared parameters from the positional
// input list, by index; missing or nil entries become free witnesses. The
// allocated values are then bound like an ordinary call.
func (p *ConstrainedProgram) enforceMainFunction(cs *r1cs.System, fileScope string, function ast.Function, inputs []ast.InputValue) (ConstrainedValue, error) {
	args := make([]ConstrainedValue, len(function.Parameters))
	for i, model := range function.Parameters {
		var value ast.InputValue
		if i < len(inputs) {
			value = inputs[i]
		}
		var arg ConstrainedValue
		var err error
		switch model.Type.(type) {
		case ast.IntegerType:
			arg, err = integerFromParameter(cs, model, value)
		case ast.BooleanType:
			arg, err = booleanFromParameter(cs, model, value)
		case ast.FieldType:
			arg, err = fieldFromParameter(cs, model, value)
		default:
			err = InvalidTypeError{Type: model.Type.String()}
		}
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return p.enforceFunction(cs, fileScope, function, args)
}
