// Package panicrecover implements the "robust command" envelope: a single
// place where a primitive handler's panic is recovered and returned as an
// error naming the handler instead of propagating raw.
package panicrecover

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs fn and converts any panic into a non-nil error tagged with
// name. A plain (non-panic) error returned by fn passes through unchanged.
func Recover(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{name: name, cause: r, stack: debug.Stack()}
		}
	}()
	return fn()
}

type panicError struct {
	name  string
	cause interface{}
	stack []byte
}

func (pe panicError) Error() string {
	if pe.name == "" {
		return fmt.Sprintf("paniced: %v", pe.cause)
	}
	return fmt.Sprintf("%v paniced: %v", pe.name, pe.cause)
}

func (pe panicError) Format(f fmt.State, c rune) {
	fmt.Fprint(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\npanic stack:\n%s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.cause.(error)
	return err
}

// IsPanic reports whether err was produced by a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// Stack returns the recovered panic's stack trace, if any.
func Stack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
