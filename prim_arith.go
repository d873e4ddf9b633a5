package main

import (
	"math"
	"strings"
)

// registerArithPrimitives installs add/sub/mul/div/mod/eq/gt/lt. add and mul
// are polymorphic the way Python's "+" and "*" operators are: add also
// concatenates Str/List/Tuple pairs, and mul also repeats a Str or List by
// an Int count. sub stays numeric-only, since Python has no "str - str".
func registerArithPrimitives(r *Registry) {
	r.Register("add", func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		switch {
		case a.IsNumeric() && b.IsNumeric():
			if a.IsInt() && b.IsInt() {
				ip.push(IntVal(a.AsInt() + b.AsInt()))
				return nil
			}
			ip.push(FloatVal(numericValue(a) + numericValue(b)))
			return nil
		case a.IsStr() && b.IsStr():
			ip.push(StrVal(a.AsStr() + b.AsStr()))
			return nil
		case a.IsList() && b.IsList():
			ip.push(ListVal(concatValues(a.AsList().Items, b.AsList().Items)))
			return nil
		case a.IsTuple() && b.IsTuple():
			ip.push(TupleVal(concatValues(a.AsTuple(), b.AsTuple())))
			return nil
		default:
			return InvalidOperationError{Op: "add", Reason: "expects two numbers, two strings, two lists, or two tuples"}
		}
	})

	r.Register("sub", binaryNumeric("sub", func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b }))

	r.Register("mul", func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		switch {
		case a.IsNumeric() && b.IsNumeric():
			if a.IsInt() && b.IsInt() {
				ip.push(IntVal(a.AsInt() * b.AsInt()))
				return nil
			}
			ip.push(FloatVal(numericValue(a) * numericValue(b)))
			return nil
		case a.IsStr() && b.IsInt():
			ip.push(StrVal(strings.Repeat(a.AsStr(), repeatCount(b.AsInt()))))
			return nil
		case a.IsInt() && b.IsStr():
			ip.push(StrVal(strings.Repeat(b.AsStr(), repeatCount(a.AsInt()))))
			return nil
		case a.IsList() && b.IsInt():
			ip.push(ListVal(repeatValues(a.AsList().Items, repeatCount(b.AsInt()))))
			return nil
		case a.IsInt() && b.IsList():
			ip.push(ListVal(repeatValues(b.AsList().Items, repeatCount(a.AsInt()))))
			return nil
		default:
			return InvalidOperationError{Op: "mul", Reason: "expects two numbers, or a string/list and an integer count"}
		}
	})

	r.Register("div", func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		if !a.IsNumeric() || !b.IsNumeric() {
			return InvalidOperationError{Op: "div", Reason: "expects numeric operands"}
		}
		if numericValue(b) == 0 {
			return DivisionByZeroError{Op: "div"}
		}
		if a.IsInt() && b.IsInt() {
			ip.push(IntVal(floorDivInt(a.AsInt(), b.AsInt())))
			return nil
		}
		ip.push(FloatVal(math.Floor(numericValue(a) / numericValue(b))))
		return nil
	})

	r.Register("mod", func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		if !a.IsNumeric() || !b.IsNumeric() {
			return InvalidOperationError{Op: "mod", Reason: "expects numeric operands"}
		}
		if numericValue(b) == 0 {
			return DivisionByZeroError{Op: "mod"}
		}
		if a.IsInt() && b.IsInt() {
			ip.push(IntVal(floorModInt(a.AsInt(), b.AsInt())))
			return nil
		}
		ip.push(FloatVal(floorModFloat(numericValue(a), numericValue(b))))
		return nil
	})

	r.Register("eq", func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		ip.push(BoolVal(Equal(a, b)))
		return nil
	})

	r.Register("gt", comparison("gt", func(c int) bool { return c > 0 }))
	r.Register("lt", comparison("lt", func(c int) bool { return c < 0 }))
}

// binaryNumeric builds a primitive that pops two numeric operands and
// pushes the result of applying intOp/floatOp, promoting to Float when
// either operand is a Float.
func binaryNumeric(name string, floatOp func(a, b float64) float64, intOp func(a, b int64) int64) Primitive {
	return func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		if !a.IsNumeric() || !b.IsNumeric() {
			return InvalidOperationError{Op: name, Reason: "expects numeric operands"}
		}
		if a.IsInt() && b.IsInt() {
			ip.push(IntVal(intOp(a.AsInt(), b.AsInt())))
			return nil
		}
		ip.push(FloatVal(floatOp(numericValue(a), numericValue(b))))
		return nil
	}
}

// concatValues returns a new slice holding a's elements followed by b's,
// without aliasing either input.
func concatValues(a, b []Value) []Value {
	out := make([]Value, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// repeatCount clamps a negative repeat count to zero, matching Python's
// "s * -1 == ''" behavior for str/list repetition.
func repeatCount(n int64) int {
	if n < 0 {
		return 0
	}
	return int(n)
}

// repeatValues returns items repeated n times as a single flat slice.
func repeatValues(items []Value, n int) []Value {
	out := make([]Value, 0, len(items)*n)
	for i := 0; i < n; i++ {
		out = append(out, items...)
	}
	return out
}

func comparison(name string, accept func(c int) bool) Primitive {
	return func(ip *Interpreter) error {
		b, err := ip.pop()
		if err != nil {
			return err
		}
		a, err := ip.pop()
		if err != nil {
			return err
		}
		c, err := Compare(a, b)
		if err != nil {
			return InvalidOperationError{Op: name, Reason: err.Error()}
		}
		ip.push(BoolVal(accept(c)))
		return nil
	}
}

// floorDivInt implements Python's integer "//" -- truncation toward
// negative infinity, not toward zero.
func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func floorModFloat(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
