package constraints

import (
	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// newScope joins an enclosing scope with an identifier.
func newScope(outer, inner string) string {
	return outer + "_" + inner
}

// ConstrainedProgram is the per-generation table of resolved definitions,
// keyed by scope-qualified name. It is never iterated, only probed by exact
// name; resolution and enforcement order comes from the program's definition
// slices. Values are never removed during a generation; the table is not
// shared across generations.
type ConstrainedProgram struct {
	values map[string]ConstrainedValue
}

func NewConstrainedProgram() *ConstrainedProgram {
	return &ConstrainedProgram{values: make(map[string]ConstrainedValue)}
}

func (p *ConstrainedProgram) store(name string, value ConstrainedValue) {
	p.values[name] = value
}

func (p *ConstrainedProgram) get(name string) (ConstrainedValue, bool) {
	v, ok := p.values[name]
	return v, ok
}

// resolveDefinitions registers every top-level definition of the program
// under its scope-qualified name: imports first (each resolved in its own
// scope, then aliased into this one), then functions, then constants, which
// are evaluated on the spot and may call the functions.
func (p *ConstrainedProgram) resolveDefinitions(cs *r1cs.System, program ast.Program) error {
	for _, imp := range program.Imports {
		if err := p.resolveDefinitions(cs, imp.Program); err != nil {
			return err
		}
		for _, function := range imp.Program.Functions {
			if v, ok := p.get(newScope(imp.Program.Name, function.Name)); ok {
				p.store(newScope(program.Name, function.Name), v)
			}
		}
		for _, constant := range imp.Program.Constants {
			if v, ok := p.get(newScope(imp.Program.Name, constant.Name)); ok {
				p.store(newScope(program.Name, constant.Name), v)
			}
		}
	}
	for _, function := range program.Functions {
		p.store(newScope(program.Name, function.Name), Function{
			Scope:      program.Name,
			Definition: function,
		})
	}
	for _, constant := range program.Constants {
		value, err := p.enforceExpression(cs, program.Name, program.Name, constant.Value)
		if err != nil {
			return err
		}
		p.store(newScope(program.Name, constant.Name), value)
	}
	return nil
}
