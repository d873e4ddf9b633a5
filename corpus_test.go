package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// corpusScenario is one of several end-to-end scenarios: a program and the
// stdout it must produce. Each interpreter instance is independent, so the
// whole table runs concurrently under an errgroup.
type corpusScenario struct {
	name     string
	program  string
	arena    int
	wantOut  string
	wantErr  bool
}

var corpusScenarios = []corpusScenario{
	{name: "add_print", program: `2 3 add print`, wantOut: "5\n"},
	{name: "str_upper_print", program: `"hello" str_upper print`, wantOut: "HELLO\n"},
	{name: "def_square", program: `def sq dup mul end 4 sq print`, wantOut: "16\n"},
	{name: "alloc_write_read", program: `10 alloc 65 over write dup read print free`, arena: 64, wantOut: "65\n"},
	{name: "for_prints_inclusive_range", program: `0 5 for dup print end`, wantOut: "0\n1\n2\n3\n4\n5\n"},
	{name: "list_reverse_print", program: `3 2 1 3 list list_reverse print`, wantOut: "[1, 2, 3]\n"},
	{name: "div_by_zero", program: `10 0 div`, wantErr: true},
}

func TestCorpusScenariosRunConcurrently(t *testing.T) {
	var g errgroup.Group
	for _, sc := range corpusScenarios {
		sc := sc
		g.Go(func() error {
			opts := []Option{}
			var out bytes.Buffer
			opts = append(opts, WithStdout(&out))
			if sc.arena > 0 {
				opts = append(opts, WithArenaSize(sc.arena))
			}
			ip := New(opts...)
			err := ip.Exec(Lex(sc.program))
			if sc.wantErr {
				if err == nil {
					t.Errorf("%s: expected an error, got none", sc.name)
				}
				return nil
			}
			if err != nil {
				t.Errorf("%s: unexpected error: %v", sc.name, err)
				return nil
			}
			if out.String() != sc.wantOut {
				t.Errorf("%s: got %q, want %q", sc.name, out.String(), sc.wantOut)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestCorpusScenarioFreeingInReverseOrderCoalesces(t *testing.T) {
	ip := New(WithArenaSize(8))
	require.NoError(t, ip.Exec(Lex(`5 alloc 3 alloc free free`)))
	assert.Equal(t, [][2]int{{0, 8}}, ip.Mem.FreeIntervals())
}

func TestCorpusScenarioDivisionByZeroErrorKind(t *testing.T) {
	ip := New()
	err := ip.Exec(Lex(`10 0 div`))
	require.Error(t, err)
	var dz DivisionByZeroError
	require.ErrorAs(t, err, &dz)
	assert.True(t, strings.Contains(err.Error(), "division"))
}
