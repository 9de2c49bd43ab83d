package gadgets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestAllocBool(t *testing.T) {
	s := newTestSystem()
	b := AllocBool(s, boolPtr(true))
	// boolean constraint plus the pin to the literal
	require.Equal(t, 2, s.NbConstraints())
	v, ok := b.Value()
	require.True(t, ok)
	require.True(t, v)
	require.NoError(t, s.CheckSatisfied())

	free := AllocBool(s, nil)
	require.Equal(t, 3, s.NbConstraints())
	_, ok = free.Value()
	require.False(t, ok)
	require.Equal(t, "?", free.String())
}

func TestNot(t *testing.T) {
	s := newTestSystem()
	require.Equal(t, "false", Not(s, NewConstBool(true)).String())

	n := s.NbConstraints()
	b := Not(s, AllocBool(s, boolPtr(false)))
	v, ok := b.Value()
	require.True(t, ok)
	require.True(t, v)
	// only the allocation costs constraints
	require.Equal(t, n+2, s.NbConstraints())
	require.NoError(t, s.CheckSatisfied())
}

func TestAnd(t *testing.T) {
	s := newTestSystem()
	for _, tc := range []struct{ a, b, want bool }{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	} {
		r := And(s, AllocBool(s, boolPtr(tc.a)), AllocBool(s, boolPtr(tc.b)))
		v, ok := r.Value()
		require.True(t, ok)
		require.Equal(t, tc.want, v)
	}
	require.NoError(t, s.CheckSatisfied())

	// constant short-circuits
	r := And(s, NewConstBool(false), AllocBool(s, nil))
	c, ok := r.Constant()
	require.True(t, ok)
	require.False(t, c)
}

func TestOr(t *testing.T) {
	s := newTestSystem()
	for _, tc := range []struct{ a, b, want bool }{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	} {
		r := Or(s, AllocBool(s, boolPtr(tc.a)), AllocBool(s, boolPtr(tc.b)))
		v, ok := r.Value()
		require.True(t, ok)
		require.Equal(t, tc.want, v)
	}
	require.NoError(t, s.CheckSatisfied())

	r := Or(s, NewConstBool(true), AllocBool(s, nil))
	c, ok := r.Constant()
	require.True(t, ok)
	require.True(t, c)
}

func TestBooleanEq(t *testing.T) {
	s := newTestSystem()
	require.True(t, NewConstBool(true).Eq(NewConstBool(true)))
	require.False(t, NewConstBool(true).Eq(NewConstBool(false)))

	a := AllocBool(s, boolPtr(true))
	b := AllocBool(s, boolPtr(true))
	require.True(t, a.Eq(a))
	require.False(t, a.Eq(b))
	require.False(t, a.Eq(NewConstBool(true)))
}

func TestBooleanAssertEq(t *testing.T) {
	s := newTestSystem()
	a := AllocBool(s, boolPtr(true))
	require.NoError(t, a.AssertEq(s, NewConstBool(true)))
	require.NoError(t, s.CheckSatisfied())

	err := NewConstBool(true).AssertEq(s, NewConstBool(false))
	require.ErrorIs(t, err, ErrAssertionFailed)

	require.NoError(t, a.AssertEq(s, NewConstBool(false)))
	require.Error(t, s.CheckSatisfied())
}
