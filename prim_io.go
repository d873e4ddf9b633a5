package main

import (
	"fmt"
	"strconv"
	"strings"
)

// registerIOPrimitives installs print and input.
func registerIOPrimitives(r *Registry) {
	r.Register("print", func(ip *Interpreter) error {
		v, err := ip.pop()
		if err != nil {
			return StackUnderflowError{Op: "print"}
		}
		fmt.Fprintln(ip.Stdout, Display(v))
		return nil
	})

	r.Register("input", func(ip *Interpreter) error {
		if ip.Stdin == nil {
			return InvalidOperationError{Op: "input", Reason: "no input source configured"}
		}
		line, err := ip.Stdin.ReadString('\n')
		if err != nil && line == "" {
			return InvalidOperationError{Op: "input", Reason: err.Error()}
		}
		line = strings.TrimRight(line, "\r\n")

		if n, err := strconv.ParseInt(line, 10, 64); err == nil {
			ip.push(IntVal(n))
			return nil
		}
		if f, err := strconv.ParseFloat(line, 64); err == nil {
			ip.push(FloatVal(f))
			return nil
		}
		ip.push(StrVal(line))
		return nil
	})
}
