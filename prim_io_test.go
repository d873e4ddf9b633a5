package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintWritesDisplayForm(t *testing.T) {
	var out bytes.Buffer
	ip := New(WithStdout(&out))
	require.NoError(t, ip.Exec(Lex(`true print`)))
	assert.Equal(t, "true\n", out.String())
}

func TestInputParsesNumericAndFallsBackToString(t *testing.T) {
	ip := New(WithStdin(strings.NewReader("42\n3.5\nhello\n")))

	require.NoError(t, ip.Exec([]string{"input"}))
	v, err := ip.pop()
	require.NoError(t, err)
	assert.True(t, v.IsInt())
	assert.Equal(t, int64(42), v.AsInt())

	require.NoError(t, ip.Exec([]string{"input"}))
	v, err = ip.pop()
	require.NoError(t, err)
	assert.True(t, v.IsFloat())

	require.NoError(t, ip.Exec([]string{"input"}))
	v, err = ip.pop()
	require.NoError(t, err)
	assert.True(t, v.IsStr())
	assert.Equal(t, "hello", v.AsStr())
}
