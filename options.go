package main

import (
	"bufio"
	"io"
	"io/ioutil"

	"github.com/KarthikSBhattar/forge-lang/internal/arena"
	"github.com/KarthikSBhattar/forge-lang/internal/tracelog"
)

// Option configures an Interpreter at construction time via the functional
// options pattern: each Option mutates the Interpreter being built.
type Option interface{ apply(ip *Interpreter) }

type optionFunc func(ip *Interpreter)

func (f optionFunc) apply(ip *Interpreter) { f(ip) }

// WithArenaSize sets the memory arena's byte capacity. The default is
// arena.DefaultSize (1024).
func WithArenaSize(size int) Option {
	return optionFunc(func(ip *Interpreter) { ip.Mem = arena.New(size) })
}

// WithStdout sets the writer print targets.
func WithStdout(w io.Writer) Option {
	return optionFunc(func(ip *Interpreter) { ip.Stdout = w })
}

// WithStdin sets the reader input reads from.
func WithStdin(r io.Reader) Option {
	return optionFunc(func(ip *Interpreter) { ip.Stdin = bufio.NewReader(r) })
}

// WithTrace enables execution tracing to w.
func WithTrace(w io.Writer) Option {
	return optionFunc(func(ip *Interpreter) { ip.trace = tracelog.New(w, true) })
}

var defaultOptions = []Option{
	WithArenaSize(arena.DefaultSize),
	WithStdout(ioutil.Discard),
}

// New constructs an Interpreter with its primitive registry fully
// populated, applying opts over the defaults.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{
		Vars:  make(map[string]Value),
		Funcs: make(map[string][]string),
		reg:   newRegistry(),
		trace: tracelog.New(nil, false),
	}
	for _, opt := range defaultOptions {
		opt.apply(ip)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ip)
		}
	}
	registerPrimitives(ip.reg)
	return ip
}
