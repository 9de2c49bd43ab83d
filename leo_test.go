package leo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vicky2k/AleoLearning/ast"
)

func TestCompile(t *testing.T) {
	program := ast.Program{
		Name: "sum",
		Functions: []ast.Function{{
			Name: "main",
			Parameters: []ast.InputModel{
				{Name: "x", Type: ast.U8},
				{Name: "y", Type: ast.U8},
			},
			Returns: ast.U8,
			Body: []ast.Statement{
				ast.Return{Value: ast.Binary{
					Op:    ast.OpAdd,
					Left:  ast.Identifier("x"),
					Right: ast.Identifier("y"),
				}},
			},
		}},
	}

	cs, out, err := Compile(program, []ast.InputValue{ast.Integer(3), ast.Integer(4)})
	require.NoError(t, err)
	require.Equal(t, "7u8", out.String())
	require.NoError(t, cs.CheckSatisfied())
	require.Greater(t, cs.NbConstraints(), 0)
}

func TestCompileNoMain(t *testing.T) {
	_, _, err := Compile(ast.Program{Name: "empty"}, nil)
	require.Error(t, err)
}
