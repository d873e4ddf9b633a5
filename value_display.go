package main

import (
	"strconv"
	"strings"
)

// Display renders v in its canonical printable form. The
// singletons print in lowercase ("true"/"false"/"none"); containers use a
// parenthesized notation that is not required to round-trip through the
// lexer.
func Display(v Value) string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNone:
		return "none"
	case KindStr:
		return v.s
	case KindComplex:
		re, im := real(v.c), imag(v.c)
		sign := "+"
		if im < 0 {
			sign = "-"
			im = -im
		}
		return "(" + strconv.FormatFloat(re, 'g', -1, 64) + sign + strconv.FormatFloat(im, 'g', -1, 64) + "j)"
	case KindList:
		return "[" + displayJoin(v.list.Items) + "]"
	case KindTuple:
		if len(v.tuple) == 1 {
			return "(" + displayRepr(v.tuple[0]) + ",)"
		}
		return "(" + displayJoin(v.tuple) + ")"
	case KindSet:
		if len(v.set.order) == 0 {
			return "set()"
		}
		return "{" + displayJoin(v.set.order) + "}"
	case KindFrozenSet:
		return "frozenset({" + displayJoin(v.frozenset.order) + "})"
	case KindDict:
		var b strings.Builder
		b.WriteByte('{')
		for i, k := range v.dict.order {
			if i > 0 {
				b.WriteString(", ")
			}
			key, _ := HashKey(k)
			b.WriteString(displayRepr(k))
			b.WriteString(": ")
			b.WriteString(displayRepr(v.dict.vals[key]))
		}
		b.WriteByte('}')
		return b.String()
	case KindBytes:
		return "b'" + string(v.bytes) + "'"
	case KindByteArray:
		return "bytearray(b'" + string(v.bytearray.Bytes) + "')"
	case KindMemoryView:
		return "<memory>"
	case KindRange:
		return "range(" + strconv.FormatInt(v.rng.Start, 10) + ", " +
			strconv.FormatInt(v.rng.Stop, 10) + ", " +
			strconv.FormatInt(v.rng.Step, 10) + ")"
	default:
		return "<invalid>"
	}
}

// displayRepr is Display, except strings are quoted -- used for elements
// nested inside a container's own Display, matching Python's repr-inside-
// container convention for list/tuple/dict printing.
func displayRepr(v Value) string {
	if v.kind == KindStr {
		return "'" + v.s + "'"
	}
	return Display(v)
}

func displayJoin(items []Value) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(displayRepr(it))
	}
	return b.String()
}
