package constraints

import (
	"fmt"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// enforceStatement lowers one statement. The boolean return reports whether
// the statement returned a value, ending the function body.
func (p *ConstrainedProgram) enforceStatement(cs *r1cs.System, fileScope, functionScope string, s ast.Statement) (ConstrainedValue, bool, error) {
	switch s := s.(type) {
	case ast.Definition:
		value, err := p.enforceExpression(cs, fileScope, functionScope, s.Value)
		if err != nil {
			return nil, false, err
		}
		p.store(newScope(functionScope, s.Variable), value)
		return nil, false, nil

	case ast.AssertEq:
		left, err := p.enforceExpression(cs, fileScope, functionScope, s.Left)
		if err != nil {
			return nil, false, err
		}
		right, err := p.enforceExpression(cs, fileScope, functionScope, s.Right)
		if err != nil {
			return nil, false, err
		}
		return nil, false, enforceAssertEq(cs, left, right)

	case ast.Return:
		value, err := p.enforceExpression(cs, fileScope, functionScope, s.Value)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	}
	panic("unknown statement node")
}

// enforceAssertEq dispatches a constraint-emitting equality on the operands'
// value kinds.
func enforceAssertEq(cs *r1cs.System, left, right ConstrainedValue) error {
	if l, ok := left.(Integer); ok {
		if r, ok := right.(Integer); ok {
			return enforceIntegerEq(cs, l, r)
		}
	}
	if l, ok := left.(Boolean); ok {
		if r, ok := right.(Boolean); ok {
			return enforceBooleanEq(cs, l, r)
		}
	}
	if l, ok := left.(Field); ok {
		if r, ok := right.(Field); ok {
			return enforceFieldEq(cs, l, r)
		}
	}
	return CannotEnforceError{Expression: fmt.Sprintf("%s == %s", left, right)}
}
