package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildList(t *testing.T, ip *Interpreter, prog string) *List {
	t.Helper()
	require.NoError(t, ip.Exec(Lex(prog)))
	v, err := ip.pop()
	require.NoError(t, err)
	require.True(t, v.IsList())
	return v.AsList()
}

func TestListAppendPopLenGet(t *testing.T) {
	ip := New()
	lst := buildList(t, ip, "1 2 2 list")
	ip.push(Value{kind: KindList, list: lst})
	require.NoError(t, ip.Exec(Lex("3 list_append")))
	v, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, v.AsList().Items))

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("list_pop")))
	popped, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(3), popped.AsInt())

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("list_len")))
	n, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n.AsInt())

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("0 list_get")))
	elem, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(1), elem.AsInt())
}

func TestListInsertRemoveIndexCount(t *testing.T) {
	ip := New()
	lst := buildList(t, ip, "1 2 3 3 list")
	v := Value{kind: KindList, list: lst}

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("1 99 list_insert")))
	r, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 99, 2, 3}, intsOf(t, r.AsList().Items))

	ip.push(r)
	require.NoError(t, ip.Exec(Lex("99 list_remove")))
	r, err = ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, r.AsList().Items))

	ip.push(r)
	require.NoError(t, ip.Exec(Lex("2 list_index")))
	idx, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(1), idx.AsInt())

	ip.push(r)
	require.NoError(t, ip.Exec(Lex("2 list_count")))
	cnt, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt.AsInt())
}

func TestListSortReverseCopyClear(t *testing.T) {
	ip := New()
	lst := buildList(t, ip, "3 1 2 3 list")
	v := Value{kind: KindList, list: lst}

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("list_sort")))
	sorted, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, sorted.AsList().Items))

	ip.push(sorted)
	require.NoError(t, ip.Exec(Lex("list_reverse")))
	rev, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, intsOf(t, rev.AsList().Items))

	ip.push(rev)
	require.NoError(t, ip.Exec(Lex("list_copy")))
	cp, err := ip.pop()
	require.NoError(t, err)
	assert.NotSame(t, rev.AsList(), cp.AsList())
	assert.Equal(t, intsOf(t, rev.AsList().Items), intsOf(t, cp.AsList().Items))

	ip.push(cp)
	require.NoError(t, ip.Exec(Lex("list_clear")))
	cleared, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, 0, len(cleared.AsList().Items))
}

func TestListSliceClampsOutOfRangeBounds(t *testing.T) {
	ip := New()
	lst := buildList(t, ip, "1 2 3 3 list")
	v := Value{kind: KindList, list: lst}

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("-100 100 list_slice")))
	r, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, intsOf(t, r.AsList().Items))

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("1 2 list_slice")))
	r, err = ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, intsOf(t, r.AsList().Items))
}

func TestListSetAndPopAtNegativeIndex(t *testing.T) {
	ip := New()
	lst := buildList(t, ip, "1 2 3 3 list")
	v := Value{kind: KindList, list: lst}

	ip.push(v)
	require.NoError(t, ip.Exec(Lex("-1 99 list_set")))
	r, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 99}, intsOf(t, r.AsList().Items))

	ip.push(r)
	require.NoError(t, ip.Exec(Lex("-1 list_pop_at")))
	popped, err := ip.pop()
	require.NoError(t, err)
	assert.Equal(t, int64(99), popped.AsInt())
}
