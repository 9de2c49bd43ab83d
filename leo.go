// Package leo ties the layers together: it builds a constraint system over
// the BN254 scalar field, runs constraint generation for a resolved program
// and reports compile statistics.
package leo

import (
	"github.com/consensys/gnark/logger"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/constraints"
	"github.com/vicky2k/AleoLearning/field"
	"github.com/vicky2k/AleoLearning/field/bn254"
	"github.com/vicky2k/AleoLearning/r1cs"
)

// Compile generates the rank-1 constraint system for a resolved program and
// the given positional inputs, returning the system and the program's output
// value. Any failure is fatal to the generation: the partially filled system
// must not be used.
func Compile(program ast.Program, inputs []ast.InputValue) (*r1cs.System, constraints.ConstrainedValue, error) {
	f := field.GetFieldFromOrder(bn254.ScalarField)
	cs := r1cs.NewSystem(f)

	output, err := constraints.GenerateConstraints(cs, program, inputs)
	if err != nil {
		return nil, nil, err
	}

	log := logger.Logger()
	log.Info().
		Int("nbConstraints", cs.NbConstraints()).
		Int("nbWitnesses", cs.NbWitnesses()).
		Msg("compiled")
	return cs, output, nil
}
