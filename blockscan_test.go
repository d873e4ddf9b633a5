package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectBlockSimple(t *testing.T) {
	toks := []string{"dup", "add", "end", "print"}
	body, next, term, err := CollectBlock(toks, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"dup", "add"}, body)
	assert.Equal(t, "end", term)
	assert.Equal(t, 3, next)
}

func TestCollectBlockNested(t *testing.T) {
	toks := []string{"if", "1", "if", "2", "end", "end", "end", "print"}
	body, next, term, err := CollectBlock(toks, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"if", "1", "if", "2", "end", "end"}, body)
	assert.Equal(t, "end", term)
	assert.Equal(t, 7, next)
}

func TestCollectBlockStopTokenLeftUnconsumed(t *testing.T) {
	toks := []string{"1", "else", "2", "end"}
	body, next, term, err := CollectBlock(toks, 0, map[string]bool{"else": true, "end": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, body)
	assert.Equal(t, "else", term)
	assert.Equal(t, 1, next)
	assert.Equal(t, "else", toks[next])
}

func TestCollectBlockUnterminatedErrors(t *testing.T) {
	toks := []string{"if", "1"}
	_, _, _, err := CollectBlock(toks, 0, nil)
	require.Error(t, err)
	var fe InvalidOperationError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "collect_block", fe.Op)
}

func TestCollectBlockEndAlwaysClosesRegardlessOfStopTokens(t *testing.T) {
	toks := []string{"if", "1", "end", "2", "end"}
	body, next, term, err := CollectBlock(toks, 0, map[string]bool{"end": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"if", "1", "end", "2"}, body)
	assert.Equal(t, "end", term)
	assert.Equal(t, 5, next)
}
