package constraints

import (
	"github.com/consensys/gnark/logger"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// GenerateConstraints lowers a resolved program into the given constraint
// system and returns the value produced by its main function.
//
// parameters are positional against main's declared parameters; a nil entry,
// or a missing trailing entry, allocates a free witness of the declared type.
// Two invocations with the same program and parameter list emit identical
// constraint sequences.
func GenerateConstraints(cs *r1cs.System, program ast.Program, parameters []ast.InputValue) (ConstrainedValue, error) {
	resolved := NewConstrainedProgram()
	if err := resolved.resolveDefinitions(cs, program); err != nil {
		return nil, err
	}

	main, ok := resolved.get(newScope(program.Name, "main"))
	if !ok {
		return nil, ErrNoMain
	}
	function, ok := main.(Function)
	if !ok {
		return nil, ErrNoMainFunction
	}

	result, err := resolved.enforceMainFunction(cs, program.Name, function.Definition, parameters)
	if err != nil {
		return nil, err
	}
	log := logger.Logger()
	log.Debug().Stringer("output", result).Msg("enforced main function")
	return result, nil
}
