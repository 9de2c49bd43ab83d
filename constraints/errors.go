package constraints

import (
	"errors"
	"fmt"
)

// Entry-point errors.
var (
	ErrNoMain         = errors.New("program has no main function")
	ErrNoMainFunction = errors.New("main must be a function")
)

// CannotEvaluateError reports a constant evaluation attempted over operands
// that cannot be combined, rendered as the offending expression.
type CannotEvaluateError struct {
	Expression string
}

func (e CannotEvaluateError) Error() string {
	return fmt.Sprintf("cannot evaluate %s", e.Expression)
}

// CannotEnforceError reports a constraint-emitting operation attempted over
// operands that cannot be combined, rendered as the offending expression.
type CannotEnforceError struct {
	Expression string
}

func (e CannotEnforceError) Error() string {
	return fmt.Sprintf("cannot enforce %s", e.Expression)
}

// InvalidTypeError reports a declared parameter type a subsystem cannot
// allocate.
type InvalidTypeError struct {
	Type string
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid parameter type %s", e.Type)
}

// InvalidIntegerError reports a supplied input that is not an integer literal
// for an integer-typed parameter.
type InvalidIntegerError struct {
	Type  string
	Value string
}

func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("expected integer input of type %s, got %s", e.Type, e.Value)
}

// InvalidBooleanError reports a supplied input that is not a boolean literal
// for a boolean-typed parameter.
type InvalidBooleanError struct {
	Value string
}

func (e InvalidBooleanError) Error() string {
	return fmt.Sprintf("expected boolean input, got %s", e.Value)
}

// InvalidFieldError reports a supplied input that is not a field literal for
// a field-typed parameter.
type InvalidFieldError struct {
	Value string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("expected field input, got %s", e.Value)
}

// UndefinedError reports an identifier with no resolved definition in scope.
type UndefinedError struct {
	Name string
}

func (e UndefinedError) Error() string {
	return fmt.Sprintf("undefined: %s", e.Name)
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Function string
	Expected int
	Got      int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("function %s expects %d arguments, got %d", e.Function, e.Expected, e.Got)
}

// MissingReturnError reports a function body that ended without returning.
type MissingReturnError struct {
	Function string
}

func (e MissingReturnError) Error() string {
	return fmt.Sprintf("function %s did not return a value", e.Function)
}
