package constraints

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vicky2k/AleoLearning/ast"
	"github.com/vicky2k/AleoLearning/field"
	"github.com/vicky2k/AleoLearning/field/bn254"
	"github.com/vicky2k/AleoLearning/gadgets"
	"github.com/vicky2k/AleoLearning/r1cs"
)

func newTestSystem() *r1cs.System {
	return r1cs.NewSystem(field.GetFieldFromOrder(bn254.ScalarField))
}

func constInteger(t *testing.T, typ ast.IntegerType, v int64) Integer {
	t.Helper()
	value, err := integerConstant(ast.IntegerLiteral{Type: typ, Value: big.NewInt(v)})
	require.NoError(t, err)
	return value.(Integer)
}

func TestIntegerString(t *testing.T) {
	require.Equal(t, "3u8", constInteger(t, ast.U8, 3).String())
	require.Equal(t, "3u16", constInteger(t, ast.U16, 3).String())
	require.Equal(t, "3u32", constInteger(t, ast.U32, 3).String())
	require.Equal(t, "3u64", constInteger(t, ast.U64, 3).String())
	require.Equal(t, "3u128", constInteger(t, ast.U128, 3).String())
}

func TestIntegerOpsSameWidth(t *testing.T) {
	for _, typ := range []ast.IntegerType{ast.U8, ast.U16, ast.U32, ast.U64, ast.U128} {
		t.Run(typ.String(), func(t *testing.T) {
			cs := newTestSystem()
			a := constInteger(t, typ, 20)
			b := constInteger(t, typ, 6)

			sum, err := enforceIntegerAdd(cs, a, b)
			require.NoError(t, err)
			require.Equal(t, "26"+typ.String(), sum.String())

			diff, err := enforceIntegerSub(cs, a, b)
			require.NoError(t, err)
			require.Equal(t, "14"+typ.String(), diff.String())

			prod, err := enforceIntegerMul(cs, a, b)
			require.NoError(t, err)
			require.Equal(t, "120"+typ.String(), prod.String())

			quot, err := enforceIntegerDiv(cs, a, b)
			require.NoError(t, err)
			require.Equal(t, "3"+typ.String(), quot.String())

			pow, err := enforceIntegerPow(cs, constInteger(t, typ, 2), b)
			require.NoError(t, err)
			require.Equal(t, "64"+typ.String(), pow.String())

			// constant operands fold everywhere
			require.Equal(t, 0, cs.NbConstraints())
		})
	}
}

func TestIntegerOpsMixedWidth(t *testing.T) {
	a := constInteger(t, ast.U8, 3)
	b := constInteger(t, ast.U16, 4)

	for _, tc := range []struct {
		op   func(*r1cs.System, Integer, Integer) (ConstrainedValue, error)
		want string
	}{
		{enforceIntegerAdd, "cannot enforce 3u8 + 4u16"},
		{enforceIntegerSub, "cannot enforce 3u8 - 4u16"},
		{enforceIntegerMul, "cannot enforce 3u8 * 4u16"},
		{enforceIntegerDiv, "cannot enforce 3u8 / 4u16"},
		{enforceIntegerPow, "cannot enforce 3u8 ** 4u16"},
	} {
		cs := newTestSystem()
		_, err := tc.op(cs, a, b)
		var enforce CannotEnforceError
		require.ErrorAs(t, err, &enforce)
		require.EqualError(t, err, tc.want)
		require.Equal(t, 0, cs.NbConstraints())
	}
}

func TestEvaluateIntegerEq(t *testing.T) {
	a := constInteger(t, ast.U8, 3)
	b := constInteger(t, ast.U8, 4)

	v, err := evaluateIntegerEq(a, a)
	require.NoError(t, err)
	require.Equal(t, "true", v.String())

	v, err = evaluateIntegerEq(a, b)
	require.NoError(t, err)
	require.Equal(t, "false", v.String())

	_, err = evaluateIntegerEq(a, constInteger(t, ast.U16, 3))
	var evaluate CannotEvaluateError
	require.ErrorAs(t, err, &evaluate)
	require.EqualError(t, err, "cannot evaluate 3u8 == 3u16")
}

func TestEnforceIntegerEq(t *testing.T) {
	cs := newTestSystem()
	err := enforceIntegerEq(cs, constInteger(t, ast.U8, 3), constInteger(t, ast.U8, 4))
	require.ErrorIs(t, err, gadgets.ErrAssertionFailed)

	err = enforceIntegerEq(cs, constInteger(t, ast.U8, 3), constInteger(t, ast.U16, 3))
	var enforce CannotEnforceError
	require.ErrorAs(t, err, &enforce)
}

func TestIntegerFromParameter(t *testing.T) {
	widths := []struct {
		typ  ast.IntegerType
		bits int
	}{{ast.U8, 8}, {ast.U16, 16}, {ast.U32, 32}, {ast.U64, 64}, {ast.U128, 128}}

	for _, w := range widths {
		t.Run(w.typ.String(), func(t *testing.T) {
			model := ast.InputModel{Name: "x", Type: w.typ}

			cs := newTestSystem()
			v, err := integerFromParameter(cs, model, ast.Integer(5))
			require.NoError(t, err)
			require.Equal(t, "5"+w.typ.String(), v.String())
			// one boolean constraint per bit plus the pin to the literal
			require.Equal(t, w.bits+1, cs.NbConstraints())
			require.NoError(t, cs.CheckSatisfied())

			cs = newTestSystem()
			v, err = integerFromParameter(cs, model, nil)
			require.NoError(t, err)
			require.Equal(t, "?"+w.typ.String(), v.String())
			require.Equal(t, w.bits, cs.NbConstraints())
		})
	}
}

func TestIntegerFromParameterRejects(t *testing.T) {
	cs := newTestSystem()

	_, err := integerFromParameter(cs, ast.InputModel{Name: "x", Type: ast.BooleanType{}}, nil)
	var invalidType InvalidTypeError
	require.ErrorAs(t, err, &invalidType)
	require.EqualError(t, err, "invalid parameter type bool")

	_, err = integerFromParameter(cs, ast.InputModel{Name: "x", Type: ast.U8}, ast.BooleanInput(true))
	var invalidInteger InvalidIntegerError
	require.ErrorAs(t, err, &invalidInteger)
	require.EqualError(t, err, "expected integer input of type u8, got true")

	_, err = integerFromParameter(cs, ast.InputModel{Name: "x", Type: ast.U8}, ast.Integer(300))
	var oor gadgets.ValueOutOfRangeError
	require.ErrorAs(t, err, &oor)

	require.Equal(t, 0, cs.NbConstraints())
}
