package gadgets

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldConstants(t *testing.T) {
	s := newTestSystem()
	f := NewConstField(s, big.NewInt(-1))
	// reduced into the field
	want := new(big.Int).Sub(s.Field().Field(), big.NewInt(1))
	require.Equal(t, want.String(), f.Value().String())
	require.Equal(t, 0, s.NbConstraints())
}

func TestFieldAddSubLinear(t *testing.T) {
	s := newTestSystem()
	a := AllocField(s, big.NewInt(10))
	b := AllocField(s, big.NewInt(4))
	n := s.NbConstraints()

	sum := a.Add(s, b)
	diff := a.Sub(s, b)
	require.Equal(t, n, s.NbConstraints())
	require.Equal(t, "14", sum.Value().String())
	require.Equal(t, "6", diff.Value().String())
	require.NoError(t, s.CheckSatisfied())
}

func TestFieldMul(t *testing.T) {
	s := newTestSystem()
	a := AllocField(s, big.NewInt(10))
	b := AllocField(s, big.NewInt(4))
	n := s.NbConstraints()

	p := a.Mul(s, b)
	require.Equal(t, n+1, s.NbConstraints())
	require.Equal(t, "40", p.Value().String())
	require.NoError(t, s.CheckSatisfied())

	c := NewConstField(s, big.NewInt(6)).Mul(s, NewConstField(s, big.NewInt(7)))
	require.Equal(t, "42", c.Value().String())
	require.Equal(t, n+1, s.NbConstraints())
}

func TestFieldDiv(t *testing.T) {
	s := newTestSystem()
	a := AllocField(s, big.NewInt(10))
	b := AllocField(s, big.NewInt(5))

	q, err := a.Div(s, b)
	require.NoError(t, err)
	require.Equal(t, "2", q.Value().String())
	require.NoError(t, s.CheckSatisfied())

	_, err = a.Div(s, NewConstField(s, big.NewInt(0)))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFieldDivInexact(t *testing.T) {
	s := newTestSystem()
	a := AllocField(s, big.NewInt(1))
	b := AllocField(s, big.NewInt(3))

	q, err := a.Div(s, b)
	require.NoError(t, err)
	// field division, not integer division
	prod := new(big.Int).Mul(q.Value(), big.NewInt(3))
	prod.Mod(prod, s.Field().Field())
	require.Equal(t, "1", prod.String())
	require.NoError(t, s.CheckSatisfied())
}

func TestFieldAssertEq(t *testing.T) {
	s := newTestSystem()
	a := AllocField(s, big.NewInt(7))
	require.NoError(t, a.AssertEq(s, NewConstField(s, big.NewInt(7))))
	require.NoError(t, s.CheckSatisfied())

	err := NewConstField(s, big.NewInt(1)).AssertEq(s, NewConstField(s, big.NewInt(2)))
	require.ErrorIs(t, err, ErrAssertionFailed)

	require.NoError(t, a.AssertEq(s, NewConstField(s, big.NewInt(8))))
	require.Error(t, s.CheckSatisfied())
}

func TestFieldFreeWitness(t *testing.T) {
	s := newTestSystem()
	a := AllocField(s, nil)
	b := AllocField(s, big.NewInt(3))
	require.Nil(t, a.Value())
	require.Equal(t, "?", a.String())

	sum := a.Add(s, b)
	require.Nil(t, sum.Value())

	p := a.Mul(s, b)
	require.Nil(t, p.Value())
}
