package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/KarthikSBhattar/forge-lang/internal/arena"
	"github.com/KarthikSBhattar/forge-lang/internal/panicrecover"
	"github.com/KarthikSBhattar/forge-lang/internal/tracelog"
)

// Interpreter is a single Forge VM instance: a data stack, a variable
// table, a function dictionary, and a memory arena, all owned exclusively
// by this instance. It is not safe for concurrent use.
type Interpreter struct {
	Stack []Value
	Vars  map[string]Value
	Funcs map[string][]string
	Mem   *arena.Arena

	reg    *Registry
	Stdout io.Writer
	Stdin  *bufio.Reader
	trace  *tracelog.Logger
}

var controlFlowTokens = map[string]bool{
	"if": true, "times": true, "while": true, "for": true,
}

// Exec runs tokens through the top-level dispatch loop. It
// is also what a user-defined function's body is run through: functions
// share the caller's stack, variables, and arena, and have no local scope.
func (ip *Interpreter) Exec(tokens []string) error {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case tok == "def":
			next, err := ip.handleDef(tokens, i)
			if err != nil {
				return err
			}
			i = next
		case controlFlowTokens[tok]:
			next, err := ip.handleControlFlow(tokens, i)
			if err != nil {
				return err
			}
			i = next
		case tok == "end":
			return InvalidOperationError{Op: "end", Reason: "unexpected 'end' encountered"}
		default:
			if err := ip.executeToken(tok); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// executeToken dispatches a single non-control-flow token, trying each
// recognizer in order until one succeeds.
func (ip *Interpreter) executeToken(tok string) error {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		ip.push(IntVal(n))
		return nil
	}

	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		ip.push(FloatVal(f))
		return nil
	}

	if len(tok) >= 1 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		if len(tok) == 1 {
			ip.push(StrVal(""))
		} else {
			ip.push(StrVal(tok[1 : len(tok)-1]))
		}
		return nil
	}

	switch tok {
	case "true":
		ip.push(BoolVal(true))
		return nil
	case "false":
		ip.push(BoolVal(false))
		return nil
	case "none":
		ip.push(NoneVal())
		return nil
	}

	if fn, ok := ip.reg.Lookup(tok); ok {
		ip.trace.Tracef("primitive %s", tok)
		err := panicrecover.Recover(tok, func() error {
			if err := fn(ip); err != nil {
				var fe ForgeError
				if asForgeError(err, &fe) {
					return err
				}
				return InvalidOperationError{Op: tok, Reason: err.Error()}
			}
			return nil
		})
		if panicrecover.IsPanic(err) {
			return InvalidOperationError{Op: tok, Reason: err.Error()}
		}
		return err
	}

	if body, ok := ip.Funcs[tok]; ok {
		ip.trace.Tracef("call %s", tok)
		return ip.Exec(body)
	}

	return InvalidOperationError{Op: "unknown token", Reason: suggestMessage(tok, ip.knownNames())}
}

func asForgeError(err error, out *ForgeError) bool {
	if fe, ok := err.(ForgeError); ok {
		*out = fe
		return true
	}
	return false
}

func (ip *Interpreter) knownNames() []string {
	names := ip.reg.Names()
	for name := range ip.Funcs {
		names = append(names, name)
	}
	return names
}

// handleDef captures the body of a "def NAME ... end" into the function
// table and returns the index just past it.
func (ip *Interpreter) handleDef(tokens []string, index int) (int, error) {
	if index+1 >= len(tokens) {
		return 0, InvalidOperationError{Op: "def", Reason: "expected function name after 'def'"}
	}
	name := tokens[index+1]
	body, next, _, err := CollectBlock(tokens, index+2, nil)
	if err != nil {
		return 0, err
	}
	ip.Funcs[name] = body
	return next, nil
}

// handleControlFlow dispatches if/times/while/for.
func (ip *Interpreter) handleControlFlow(tokens []string, index int) (int, error) {
	switch tokens[index] {
	case "if":
		return ip.handleIf(tokens, index)
	case "times":
		return ip.handleTimes(tokens, index)
	case "while":
		return ip.handleWhile(tokens, index)
	case "for":
		return ip.handleFor(tokens, index)
	default:
		return 0, InvalidOperationError{Op: "control flow", Reason: "unknown control-flow token: " + tokens[index]}
	}
}

var ifStopTokens = map[string]bool{"else": true, "end": true}

func (ip *Interpreter) handleIf(tokens []string, index int) (int, error) {
	cond, err := ip.pop()
	if err != nil {
		return 0, err
	}
	trueBlock, next, terminator, err := CollectBlock(tokens, index+1, ifStopTokens)
	if err != nil {
		return 0, err
	}

	if terminator == "else" {
		elseBlock, afterElse, _, err := CollectBlock(tokens, next+1, nil)
		if err != nil {
			return 0, err
		}
		if cond.Truthy() {
			if err := ip.Exec(trueBlock); err != nil {
				return 0, err
			}
		} else if err := ip.Exec(elseBlock); err != nil {
			return 0, err
		}
		return afterElse, nil
	}

	if cond.Truthy() {
		if err := ip.Exec(trueBlock); err != nil {
			return 0, err
		}
	}
	return next, nil
}

func (ip *Interpreter) handleTimes(tokens []string, index int) (int, error) {
	count, err := ip.pop()
	if err != nil {
		return 0, err
	}
	if !count.IsInt() {
		return 0, InvalidOperationError{Op: "times", Reason: "expects an integer count"}
	}
	body, next, _, err := CollectBlock(tokens, index+1, nil)
	if err != nil {
		return 0, err
	}
	for n := count.AsInt(); n > 0; n-- {
		if err := ip.Exec(body); err != nil {
			return 0, err
		}
	}
	return next, nil
}

func (ip *Interpreter) handleWhile(tokens []string, index int) (int, error) {
	body, next, _, err := CollectBlock(tokens, index+1, nil)
	if err != nil {
		return 0, err
	}
	cond, err := ip.pop()
	if err != nil {
		return 0, err
	}
	for cond.Truthy() {
		if err := ip.Exec(body); err != nil {
			return 0, err
		}
		cond, err = ip.pop()
		if err != nil {
			return 0, err
		}
	}
	return next, nil
}

func (ip *Interpreter) handleFor(tokens []string, index int) (int, error) {
	if len(ip.Stack) < 2 {
		return 0, StackUnderflowError{Op: "for"}
	}
	stop, err := ip.pop()
	if err != nil {
		return 0, err
	}
	start, err := ip.pop()
	if err != nil {
		return 0, err
	}
	if !start.IsInt() || !stop.IsInt() {
		return 0, InvalidOperationError{Op: "for", Reason: "loop bounds must be integers"}
	}
	body, next, _, err := CollectBlock(tokens, index+1, nil)
	if err != nil {
		return 0, err
	}

	step := int64(1)
	if start.AsInt() > stop.AsInt() {
		step = -1
	}
	for i := start.AsInt(); (step > 0 && i <= stop.AsInt()) || (step < 0 && i >= stop.AsInt()); i += step {
		ip.push(IntVal(i))
		if err := ip.Exec(body); err != nil {
			return 0, err
		}
		// The loop variable (or whatever the body left) is always discarded
		// after each iteration -- preserved exactly.6, §9.
		if _, err := ip.pop(); err != nil {
			return 0, err
		}
	}
	return next, nil
}

// push, pop, and peek are the stack primitives used throughout eval.go and
// every prim_*.go file.
func (ip *Interpreter) push(v Value) {
	ip.Stack = append(ip.Stack, v)
}

func (ip *Interpreter) pop() (Value, error) {
	n := len(ip.Stack)
	if n == 0 {
		return Value{}, StackUnderflowError{Op: "pop"}
	}
	v := ip.Stack[n-1]
	ip.Stack = ip.Stack[:n-1]
	return v, nil
}

func (ip *Interpreter) peek() (Value, error) {
	n := len(ip.Stack)
	if n == 0 {
		return Value{}, StackUnderflowError{Op: "peek"}
	}
	return ip.Stack[n-1], nil
}
