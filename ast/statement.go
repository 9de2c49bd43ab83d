package ast

// Statement is the closed set of statement nodes in a function body.
type Statement interface {
	isStatement()
}

// Definition binds `let Variable = Value` in the enclosing function scope.
type Definition struct {
	Variable string
	Value    Expression
}

func (Definition) isStatement() {}

// AssertEq emits constraints forcing both sides equal.
type AssertEq struct {
	Left, Right Expression
}

func (AssertEq) isStatement() {}

// Return ends the function with the given value.
type Return struct {
	Value Expression
}

func (Return) isStatement() {}
