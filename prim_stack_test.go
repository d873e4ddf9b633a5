package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPrimitives(t *testing.T) {
	var out bytes.Buffer
	ip := New(WithStdout(&out))

	require.NoError(t, ip.Exec(Lex("1 2 swap")))
	assert.Equal(t, []int64{2, 1}, stackInts(t, ip))

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex("1 dup")))
	assert.Equal(t, []int64{1, 1}, stackInts(t, ip))

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex("1 2 drop")))
	assert.Equal(t, []int64{1}, stackInts(t, ip))

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex("1 2 over")))
	assert.Equal(t, []int64{1, 2, 1}, stackInts(t, ip))

	ip.Stack = nil
	require.NoError(t, ip.Exec(Lex("1 2 3 rot")))
	assert.Equal(t, []int64{2, 3, 1}, stackInts(t, ip))
}

func TestStackUnderflowErrors(t *testing.T) {
	for _, prog := range []string{"dup", "swap", "drop", "over", "1 rot", "1 2 rot"} {
		ip := New()
		err := ip.Exec(Lex(prog))
		require.Error(t, err, prog)
		var se StackUnderflowError
		require.ErrorAs(t, err, &se, prog)
	}
}

func stackInts(t *testing.T, ip *Interpreter) []int64 {
	t.Helper()
	out := make([]int64, len(ip.Stack))
	for i, v := range ip.Stack {
		require.True(t, v.IsInt())
		out[i] = v.AsInt()
	}
	return out
}
