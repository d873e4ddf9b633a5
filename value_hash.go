package main

import (
	"fmt"
	"sort"
	"strconv"
)

// HashKey returns a canonical string encoding for a hashable Value, suitable
// as a Go map key. It fails for non-hashable kinds: List, Set,
// Dict, ByteArray, MemoryView.
func HashKey(v Value) (string, error) {
	switch v.kind {
	case KindInt:
		return "i:" + strconv.FormatInt(v.i, 10), nil
	case KindFloat:
		return "f:" + strconv.FormatFloat(v.f, 'g', -1, 64), nil
	case KindBool:
		return "b:" + strconv.FormatBool(v.b), nil
	case KindNone:
		return "n:", nil
	case KindStr:
		return "s:" + v.s, nil
	case KindBytes:
		return "y:" + string(v.bytes), nil
	case KindComplex:
		return fmt.Sprintf("c:%v:%v", real(v.c), imag(v.c)), nil
	case KindRange:
		return fmt.Sprintf("r:%d:%d:%d", v.rng.Start, v.rng.Stop, v.rng.Step), nil
	case KindTuple:
		parts := make([]string, len(v.tuple))
		for i, e := range v.tuple {
			k, err := HashKey(e)
			if err != nil {
				return "", InvalidOperationError{Op: "hash", Reason: "unhashable type in tuple"}
			}
			parts[i] = k
		}
		return "t:" + fmt.Sprint(parts), nil
	case KindFrozenSet:
		keys := make([]string, 0, len(v.frozenset.order))
		for _, e := range v.frozenset.order {
			k, _ := HashKey(e)
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "fs:" + fmt.Sprint(keys), nil
	default:
		return "", InvalidOperationError{Op: "hash", Reason: fmt.Sprintf("unhashable type: %s", v.kind)}
	}
}

// Equal implements Forge's natural per-variant equality. It
// is defined across all variants, including the unhashable ones, since
// equality (the eq primitive) is broader than hashability.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		// Numeric cross-kind equality: bool/int/float compare by numeric value,
		// matching the host's natural coercion (true == 1, 1 == 1.0, ...).
		if a.IsNumeric() && b.IsNumeric() {
			return numericValue(a) == numericValue(b)
		}
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindBool:
		return a.b == b.b
	case KindNone:
		return true
	case KindStr:
		return a.s == b.s
	case KindComplex:
		return a.c == b.c
	case KindBytes:
		return string(a.bytes) == string(b.bytes)
	case KindRange:
		return a.rng == b.rng
	case KindTuple:
		return equalSlice(a.tuple, b.tuple)
	case KindList:
		return equalSlice(a.list.Items, b.list.Items)
	case KindByteArray:
		return string(a.bytearray.Bytes) == string(b.bytearray.Bytes)
	case KindSet:
		return equalSetItems(a.set, b.set)
	case KindFrozenSet:
		return equalSetItems(a.frozenset, b.frozenset)
	case KindDict:
		return equalDict(a.dict, b.dict)
	default:
		return false
	}
}

func numericValue(v Value) float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func equalSlice(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSetItems(a, b *Set) bool {
	if len(a.order) != len(b.order) {
		return false
	}
	for key := range a.index {
		if _, ok := b.index[key]; !ok {
			return false
		}
	}
	return true
}

func equalDict(a, b *Dict) bool {
	if len(a.order) != len(b.order) {
		return false
	}
	for key, v := range a.vals {
		bv, ok := b.vals[key]
		if !ok || !Equal(v, bv) {
			return false
		}
	}
	return true
}

// Compare orders a and b, returning -1, 0, or 1. It is only total within
// numeric Values and within Str/Bytes; mixed-type ordering
// returns an error.
func Compare(a, b Value) (int, error) {
	if a.IsNumeric() && b.IsNumeric() {
		av, bv := numericValue(a), numericValue(b)
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.kind == KindStr && b.kind == KindStr {
		switch {
		case a.s < b.s:
			return -1, nil
		case a.s > b.s:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.kind == KindBytes && b.kind == KindBytes {
		as, bs := string(a.bytes), string(b.bytes)
		switch {
		case as < bs:
			return -1, nil
		case as > bs:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, InvalidOperationError{Op: "compare", Reason: fmt.Sprintf("cannot order %s and %s", a.kind, b.kind)}
}
