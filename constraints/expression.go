package constraints

import (
	"fmt"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/gadgets"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// enforceExpression lowers one expression node into constraints and returns
// its value. Identifiers resolve against the function scope first, then the
// file scope.
func (p *ConstrainedProgram) enforceExpression(cs *r1cs.System, fileScope, functionScope string, e ast.Expression) (ConstrainedValue, error) {
	switch e := e.(type) {
	case ast.Identifier:
		if v, ok := p.get(newScope(functionScope, string(e))); ok {
			return v, nil
		}
		if v, ok := p.get(newScope(fileScope, string(e))); ok {
			return v, nil
		}
		return nil, UndefinedError{Name: string(e)}

	case ast.IntegerLiteral:
		return integerConstant(e)

	case ast.BooleanLiteral:
		return Boolean{Value: gadgets.NewConstBool(bool(e))}, nil

	case ast.FieldLiteral:
		return Field{Value: gadgets.NewConstField(cs, e.Value)}, nil

	case ast.Binary:
		left, err := p.enforceExpression(cs, fileScope, functionScope, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := p.enforceExpression(cs, fileScope, functionScope, e.Right)
		if err != nil {
			return nil, err
		}
		return p.enforceBinary(cs, e.Op, left, right)

	case ast.Not:
		operand, err := p.enforceExpression(cs, fileScope, functionScope, e.Operand)
		if err != nil {
			return nil, err
		}
		return enforceNot(cs, operand)

	case ast.Call:
		callee, err := p.enforceExpression(cs, fileScope, functionScope, e.Function)
		if err != nil {
			return nil, err
		}
		function, ok := callee.(Function)
		if !ok {
			return nil, CannotEnforceError{Expression: fmt.Sprintf("%s(...)", e.Function)}
		}
		args := make([]ConstrainedValue, len(e.Arguments))
		for i, arg := range e.Arguments {
			args[i], err = p.enforceExpression(cs, fileScope, functionScope, arg)
			if err != nil {
				return nil, err
			}
		}
		return p.enforceFunction(cs, function.Scope, function.Definition, args)
	}
	panic("unknown expression node")
}

// enforceBinary dispatches a binary operator on the operands' value kinds.
// Mixed kinds are always rejected, mirroring the width rule for integers.
func (p *ConstrainedProgram) enforceBinary(cs *r1cs.System, op ast.BinaryOp, left, right ConstrainedValue) (ConstrainedValue, error) {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpPow:
		if l, ok := left.(Integer); ok {
			if r, ok := right.(Integer); ok {
				switch op {
				case ast.OpAdd:
					return enforceIntegerAdd(cs, l, r)
				case ast.OpSub:
					return enforceIntegerSub(cs, l, r)
				case ast.OpMul:
					return enforceIntegerMul(cs, l, r)
				case ast.OpDiv:
					return enforceIntegerDiv(cs, l, r)
				case ast.OpPow:
					return enforceIntegerPow(cs, l, r)
				}
			}
		}
		if l, ok := left.(Field); ok {
			if r, ok := right.(Field); ok {
				switch op {
				case ast.OpAdd:
					return enforceFieldAdd(cs, l, r), nil
				case ast.OpSub:
					return enforceFieldSub(cs, l, r), nil
				case ast.OpMul:
					return enforceFieldMul(cs, l, r), nil
				case ast.OpDiv:
					return enforceFieldDiv(cs, l, r)
				}
			}
		}

	case ast.OpEq:
		if l, ok := left.(Integer); ok {
			if r, ok := right.(Integer); ok {
				return evaluateIntegerEq(l, r)
			}
		}
		if l, ok := left.(Boolean); ok {
			if r, ok := right.(Boolean); ok {
				return evaluateBooleanEq(l, r), nil
			}
		}
		if l, ok := left.(Field); ok {
			if r, ok := right.(Field); ok {
				return evaluateFieldEq(l, r), nil
			}
		}
		return nil, CannotEvaluateError{Expression: fmt.Sprintf("%s == %s", left, right)}

	case ast.OpAnd, ast.OpOr:
		if l, ok := left.(Boolean); ok {
			if r, ok := right.(Boolean); ok {
				if op == ast.OpAnd {
					return enforceAnd(cs, l, r), nil
				}
				return enforceOr(cs, l, r), nil
			}
		}
	}
	return nil, CannotEnforceError{Expression: fmt.Sprintf("%s %s %s", left, op, right)}
}
