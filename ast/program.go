package ast

// Function is a resolved top-level function definition.
type Function struct {
	Name       string
	Parameters []InputModel
	Returns    Type // nil when the function declares no return type
	Body       []Statement
}

// Constant binds a top-level name to a constant expression. Constants are
// evaluated during program resolution, after the program's functions are
// registered, so they may call them.
type Constant struct {
	Name  string
	Value Expression
}

// Import carries an already-resolved imported program; its definitions are
// registered under the imported program's own scope and aliased into the
// importing program's scope.
type Import struct {
	Program Program
}

// Program is one fully parsed and resolved compilation unit. Definitions are
// slices, not maps: resolution order is part of the constraint system's
// shape and must be reproducible.
type Program struct {
	Name      string
	Imports   []Import
	Functions []Function
	Constants []Constant
}
