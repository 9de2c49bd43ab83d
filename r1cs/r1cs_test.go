package r1cs

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vicky2k/AleoLearning/field"
	"github.com/vicky2k/AleoLearning/field/bn254"
)

func newTestSystem() *System {
	return NewSystem(field.GetFieldFromOrder(bn254.ScalarField))
}

func TestWitnessAllocation(t *testing.T) {
	s := newTestSystem()
	require.Equal(t, 0, s.NbWitnesses())

	a := s.NewWitness(big.NewInt(3))
	b := s.NewWitness(nil)
	require.Equal(t, 1, a)
	require.Equal(t, 2, b)
	require.Equal(t, 2, s.NbWitnesses())

	v, ok := s.WitnessValue(a)
	require.True(t, ok)
	require.Equal(t, "3", s.Field().ToBigInt(v).String())

	_, ok = s.WitnessValue(b)
	require.False(t, ok)
}

func TestEval(t *testing.T) {
	s := newTestSystem()
	a := s.NewWitness(big.NewInt(3))
	b := s.NewWitness(big.NewInt(5))

	two := s.Field().FromInterface(2)
	lc := s.Add(NewLinear(a, two), NewLinear(b, s.Field().One()))
	lc = s.Add(lc, s.Constant(big.NewInt(7)))

	v, ok := s.Eval(lc)
	require.True(t, ok)
	require.Equal(t, "18", s.Field().ToBigInt(v).String())

	free := s.NewWitness(nil)
	_, ok = s.Eval(s.Add(lc, NewLinear(free, s.Field().One())))
	require.False(t, ok)
}

func TestLinearCombinationMerge(t *testing.T) {
	s := newTestSystem()
	a := s.NewWitness(big.NewInt(1))
	b := s.NewWitness(big.NewInt(1))

	one := s.Field().One()
	x := s.Add(NewLinear(a, one), NewLinear(b, one))
	require.Len(t, x, 2)

	// a cancels out
	y := s.Sub(x, NewLinear(a, one))
	require.Len(t, y, 1)
	require.Equal(t, b, y[0].VID)

	// scaling by zero is the empty combination
	require.Len(t, s.Scale(x, s.Field().FromInterface(0)), 0)
	require.True(t, NewConstant(s.Field().FromInterface(0)).IsConstant())
}

func TestCheckSatisfied(t *testing.T) {
	s := newTestSystem()
	a := s.NewWitness(big.NewInt(3))
	b := s.NewWitness(big.NewInt(5))
	p := s.NewWitness(big.NewInt(15))

	one := s.Field().One()
	s.AddConstraint(NewLinear(a, one), NewLinear(b, one), NewLinear(p, one))
	require.NoError(t, s.CheckSatisfied())

	s.AddConstraint(NewLinear(a, one), NewLinear(b, one), NewLinear(a, one))
	err := s.CheckSatisfied()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not satisfied")
}

func TestCheckSatisfiedUnassigned(t *testing.T) {
	s := newTestSystem()
	a := s.NewWitness(nil)
	lc := NewLinear(a, s.Field().One())
	s.AddConstraint(lc, lc, lc)

	err := s.CheckSatisfied()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unassigned")
}

func TestRendering(t *testing.T) {
	s := newTestSystem()
	a := s.NewWitness(big.NewInt(3))
	lc := s.Add(NewLinear(a, s.Field().FromInterface(2)), s.Constant(big.NewInt(1)))
	require.Equal(t, "1+v1*2", lc.String(s.Field()))
	require.Equal(t, "0", LinearCombination(nil).String(s.Field()))

	s.AddConstraint(lc, s.One(), nil)
	require.Equal(t, "(1+v1*2) * (v0*1) = (0)", s.Constraints()[0].String(s.Field()))
}
