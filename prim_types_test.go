package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAndTupleConstructorsPreservePushOrder(t *testing.T) {
	ip := New()
	require.NoError(t, ip.Exec(Lex("1 2 3 3 list")))
	v, err := ip.pop()
	require.NoError(t, err)
	require.True(t, v.IsList())
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, v.AsList().Items))

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex("1 2 3 3 tuple")))
	v, err = ip.pop()
	require.NoError(t, err)
	require.True(t, v.IsTuple())
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, v.AsTuple()))
}

func TestSetConstructorIsNotReversedAndDedupes(t *testing.T) {
	ip := New()
	require.NoError(t, ip.Exec(Lex("1 1 2 3 set")))
	v, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, 2, len(v.AsSet().Items()))
	assert.Equal(t, []int64{2, 1}, intsOf(t, v.AsSet().Items()))
}

func TestDictConstructor(t *testing.T) {
	ip := New()
	require.NoError(t, ip.Exec(Lex(`"a" 1 "b" 2 2 dict`)))
	v, err := ip.pop()
	require.NoError(t, err)
	require.True(t, v.IsDict())
	got, ok, err := v.AsDict().get(StrVal("a"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.AsInt())
}

func TestBoolIntFloatStrCoercions(t *testing.T) {
	ip := New()
	require.NoError(t, ip.Exec(Lex(`"42" int`)))
	v, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.AsInt())

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex(`"3.5" float`)))
	v, err = ip.pop()
	require.NoError(t, err)
	assert.InDelta(t, 3.5, v.AsFloat(), 1e-9)

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex(`0 bool`)))
	v, err = ip.pop()
	require.NoError(t, err)
	assert.False(t, v.AsBool())

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex(`true str`)))
	v, err = ip.pop()
	require.NoError(t, err)
	assert.Equal(t, "True", v.AsStr())
}

func TestBytesRejectsOutOfRangeValues(t *testing.T) {
	ip := New()
	err := ip.Exec(Lex("1 256 2 bytes"))
	require.Error(t, err)
}

func intsOf(t *testing.T, items []Value) []int64 {
	t.Helper()
	out := make([]int64, len(items))
	for i, v := range items {
		require.True(t, v.IsInt())
		out[i] = v.AsInt()
	}
	return out
}
