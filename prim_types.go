package main

import (
	"strconv"
)

// registerTypePrimitives installs the container constructors, numeric/
// string coercions, and the boolean/none literal pushers.
func registerTypePrimitives(r *Registry) {
	r.Register("complex", func(ip *Interpreter) error {
		imag, err := ip.pop()
		if err != nil {
			return err
		}
		real, err := ip.pop()
		if err != nil {
			return err
		}
		if !real.IsNumeric() || !imag.IsNumeric() {
			return InvalidOperationError{Op: "complex", Reason: "expects two numeric operands"}
		}
		ip.push(ComplexVal(numericValue(real), numericValue(imag)))
		return nil
	})

	r.Register("list", func(ip *Interpreter) error {
		n, err := ip.popCount("list")
		if err != nil {
			return err
		}
		items, err := ip.popReversed(n)
		if err != nil {
			return err
		}
		ip.push(ListVal(items))
		return nil
	})

	r.Register("tuple", func(ip *Interpreter) error {
		n, err := ip.popCount("tuple")
		if err != nil {
			return err
		}
		items, err := ip.popReversed(n)
		if err != nil {
			return err
		}
		ip.push(TupleVal(items))
		return nil
	})

	r.Register("set", func(ip *Interpreter) error {
		n, err := ip.popCount("set")
		if err != nil {
			return err
		}
		items, err := ip.popN(n)
		if err != nil {
			return err
		}
		if err := checkHashable("set", items); err != nil {
			return err
		}
		ip.push(SetVal(items))
		return nil
	})

	r.Register("frozenset", func(ip *Interpreter) error {
		n, err := ip.popCount("frozenset")
		if err != nil {
			return err
		}
		items, err := ip.popN(n)
		if err != nil {
			return err
		}
		if err := checkHashable("frozenset", items); err != nil {
			return err
		}
		ip.push(FrozenSetVal(items))
		return nil
	})

	r.Register("dict", func(ip *Interpreter) error {
		n, err := ip.popCount("dict")
		if err != nil {
			return err
		}
		pairs := make([][2]Value, n)
		for i := 0; i < n; i++ {
			value, err := ip.pop()
			if err != nil {
				return err
			}
			key, err := ip.pop()
			if err != nil {
				return err
			}
			if !key.IsHashable() {
				return InvalidOperationError{Op: "dict", Reason: "unhashable type used as key"}
			}
			pairs[i] = [2]Value{key, value}
		}
		ip.push(DictVal(pairs))
		return nil
	})

	r.Register("bytes", func(ip *Interpreter) error {
		n, err := ip.popCount("bytes")
		if err != nil {
			return err
		}
		items, err := ip.popReversed(n)
		if err != nil {
			return err
		}
		bs, err := toByteSlice("bytes", items)
		if err != nil {
			return err
		}
		ip.push(BytesVal(bs))
		return nil
	})

	r.Register("bytearray", func(ip *Interpreter) error {
		n, err := ip.popCount("bytearray")
		if err != nil {
			return err
		}
		items, err := ip.popReversed(n)
		if err != nil {
			return err
		}
		bs, err := toByteSlice("bytearray", items)
		if err != nil {
			return err
		}
		ip.push(ByteArrayVal(bs))
		return nil
	})

	r.Register("memoryview", func(ip *Interpreter) error {
		obj, err := ip.pop()
		if err != nil {
			return err
		}
		if obj.Kind() != KindBytes && obj.Kind() != KindByteArray {
			return InvalidOperationError{Op: "memoryview", Reason: "expects a bytes-like object"}
		}
		ip.push(MemoryViewVal(obj))
		return nil
	})

	r.Register("range", func(ip *Interpreter) error {
		step, err := ip.pop()
		if err != nil {
			return err
		}
		stop, err := ip.pop()
		if err != nil {
			return err
		}
		start, err := ip.pop()
		if err != nil {
			return err
		}
		if !start.IsInt() || !stop.IsInt() || !step.IsInt() {
			return InvalidOperationError{Op: "range", Reason: "expects three integer arguments: start, stop, step"}
		}
		ip.push(RangeVal(start.AsInt(), stop.AsInt(), step.AsInt()))
		return nil
	})

	r.Register("bool", func(ip *Interpreter) error {
		v, err := ip.pop()
		if err != nil {
			return err
		}
		ip.push(BoolVal(v.Truthy()))
		return nil
	})

	r.Register("int", func(ip *Interpreter) error {
		v, err := ip.pop()
		if err != nil {
			return err
		}
		n, err := coerceInt(v)
		if err != nil {
			return err
		}
		ip.push(IntVal(n))
		return nil
	})

	r.Register("float", func(ip *Interpreter) error {
		v, err := ip.pop()
		if err != nil {
			return err
		}
		f, err := coerceFloat(v)
		if err != nil {
			return err
		}
		ip.push(FloatVal(f))
		return nil
	})

	r.Register("str", func(ip *Interpreter) error {
		v, err := ip.pop()
		if err != nil {
			return err
		}
		ip.push(StrVal(PyStr(v)))
		return nil
	})

	r.Register("push_true", func(ip *Interpreter) error {
		ip.push(BoolVal(true))
		return nil
	})
	r.Register("push_false", func(ip *Interpreter) error {
		ip.push(BoolVal(false))
		return nil
	})
	r.Register("push_none", func(ip *Interpreter) error {
		ip.push(NoneVal())
		return nil
	})
}

func checkHashable(op string, items []Value) error {
	for _, v := range items {
		if !v.IsHashable() {
			return InvalidOperationError{Op: op, Reason: "unhashable type: " + v.Kind().String()}
		}
	}
	return nil
}

func toByteSlice(op string, items []Value) ([]byte, error) {
	out := make([]byte, len(items))
	for i, v := range items {
		if !v.IsInt() || v.AsInt() < 0 || v.AsInt() > 255 {
			return nil, InvalidOperationError{Op: op, Reason: "expects integer values between 0 and 255"}
		}
		out[i] = byte(v.AsInt())
	}
	return out, nil
}

func coerceInt(v Value) (int64, error) {
	switch v.Kind() {
	case KindInt:
		return v.AsInt(), nil
	case KindBool:
		if v.AsBool() {
			return 1, nil
		}
		return 0, nil
	case KindFloat:
		return int64(v.AsFloat()), nil
	case KindStr:
		n, err := strconv.ParseInt(v.AsStr(), 10, 64)
		if err != nil {
			return 0, InvalidOperationError{Op: "int", Reason: "invalid literal for int(): " + v.AsStr()}
		}
		return n, nil
	default:
		return 0, InvalidOperationError{Op: "int", Reason: "cannot convert " + v.Kind().String() + " to int"}
	}
}

func coerceFloat(v Value) (float64, error) {
	switch v.Kind() {
	case KindFloat:
		return v.AsFloat(), nil
	case KindInt:
		return float64(v.AsInt()), nil
	case KindBool:
		if v.AsBool() {
			return 1, nil
		}
		return 0, nil
	case KindStr:
		f, err := strconv.ParseFloat(v.AsStr(), 64)
		if err != nil {
			return 0, InvalidOperationError{Op: "float", Reason: "invalid literal for float(): " + v.AsStr()}
		}
		return f, nil
	default:
		return 0, InvalidOperationError{Op: "float", Reason: "cannot convert " + v.Kind().String() + " to float"}
	}
}
