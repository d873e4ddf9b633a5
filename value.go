package main

import "fmt"

// Kind tags the variant held by a Value. Forge's type system is closed: no
// primitive or literal can ever produce a Kind outside this set.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindNone
	KindStr
	KindComplex
	KindList
	KindTuple
	KindSet
	KindFrozenSet
	KindDict
	KindBytes
	KindByteArray
	KindMemoryView
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNone:
		return "none"
	case KindStr:
		return "str"
	case KindComplex:
		return "complex"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindSet:
		return "set"
	case KindFrozenSet:
		return "frozenset"
	case KindDict:
		return "dict"
	case KindBytes:
		return "bytes"
	case KindByteArray:
		return "bytearray"
	case KindMemoryView:
		return "memoryview"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Range is the (start, stop, step) triple backing a Range value.
type Range struct {
	Start, Stop, Step int64
}

// List is a shared, mutable sequence. Value holds a *List so that pushing
// the same list through multiple stack slots (or storing it in a variable
// and later mutating it via the stack) observes the same underlying data,
// i.e. reference rather than value semantics.
type List struct{ Items []Value }

// Set is a shared, mutable, unordered collection with duplicates collapsed.
// Element order follows first-insertion, like Python's dict-backed set.
type Set struct {
	order []Value
	index map[string]int
}

// Dict is a shared, mutable mapping with insertion-order iteration.
type Dict struct {
	order []Value
	index map[string]int
	vals  map[string]Value
}

// ByteArray is a shared, mutable byte sequence.
type ByteArray struct{ Bytes []byte }

// MemoryView is a read-write view over an existing byte container.
type MemoryView struct {
	target *Value
}

// Value is a closed tagged sum over Forge's runtime types. The
// zero Value is KindInt holding 0.
type Value struct {
	kind Kind

	i int64
	f float64
	b bool
	s string
	c complex128

	list      *List
	tuple     []Value
	set       *Set
	frozenset *Set
	dict      *Dict
	bytes     []byte
	bytearray *ByteArray
	memview   *MemoryView
	rng       Range
}

func (v Value) Kind() Kind { return v.kind }

func IntVal(n int64) Value     { return Value{kind: KindInt, i: n} }
func FloatVal(f float64) Value { return Value{kind: KindFloat, f: f} }
func BoolVal(b bool) Value     { return Value{kind: KindBool, b: b} }
func NoneVal() Value           { return Value{kind: KindNone} }
func StrVal(s string) Value    { return Value{kind: KindStr, s: s} }

func ComplexVal(re, im float64) Value {
	return Value{kind: KindComplex, c: complex(re, im)}
}

func ListVal(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: &List{Items: cp}}
}

func TupleVal(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindTuple, tuple: cp}
}

func SetVal(items []Value) Value {
	s := newSet()
	for _, it := range items {
		_ = s.add(it)
	}
	return Value{kind: KindSet, set: s}
}

func FrozenSetVal(items []Value) Value {
	s := newSet()
	for _, it := range items {
		_ = s.add(it)
	}
	return Value{kind: KindFrozenSet, frozenset: s}
}

func DictVal(pairs [][2]Value) Value {
	d := newDict()
	for _, kv := range pairs {
		_ = d.set(kv[0], kv[1])
	}
	return Value{kind: KindDict, dict: d}
}

func BytesVal(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, bytes: cp}
}

func ByteArrayVal(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindByteArray, bytearray: &ByteArray{Bytes: cp}}
}

func MemoryViewVal(target Value) Value {
	return Value{kind: KindMemoryView, memview: &MemoryView{target: &target}}
}

func RangeVal(start, stop, step int64) Value {
	return Value{kind: KindRange, rng: Range{Start: start, Stop: stop, Step: step}}
}

func (v Value) AsInt() int64         { return v.i }
func (v Value) AsFloat() float64     { return v.f }
func (v Value) AsBool() bool         { return v.b }
func (v Value) AsStr() string        { return v.s }
func (v Value) AsComplex() complex128 { return v.c }
func (v Value) AsList() *List        { return v.list }
func (v Value) AsTuple() []Value     { return v.tuple }
func (v Value) AsSet() *Set          { return v.set }
func (v Value) AsFrozenSet() *Set    { return v.frozenset }
func (v Value) AsDict() *Dict        { return v.dict }
func (v Value) AsBytes() []byte      { return v.bytes }
func (v Value) AsByteArray() *ByteArray { return v.bytearray }
func (v Value) AsMemoryView() *MemoryView { return v.memview }
func (v Value) AsRange() Range        { return v.rng }

// IsInt, IsStr, ... are small predicates used pervasively by primitive type
// checks, keeping call sites as "if !v.IsStr() { ... }" rather than repeated
// "v.Kind() != KindStr".
func (v Value) IsInt() bool       { return v.kind == KindInt }
func (v Value) IsFloat() bool     { return v.kind == KindFloat }
func (v Value) IsBool() bool      { return v.kind == KindBool }
func (v Value) IsNone() bool      { return v.kind == KindNone }
func (v Value) IsStr() bool       { return v.kind == KindStr }
func (v Value) IsList() bool      { return v.kind == KindList }
func (v Value) IsTuple() bool     { return v.kind == KindTuple }
func (v Value) IsDict() bool      { return v.kind == KindDict }
func (v Value) IsNumeric() bool   { return v.kind == KindInt || v.kind == KindFloat || v.kind == KindBool }

// Truthy implements the host's natural coercion for each variant: zero
// numbers, empty containers, None, and false are false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindBool:
		return v.b
	case KindNone:
		return false
	case KindStr:
		return len(v.s) > 0
	case KindComplex:
		return v.c != 0
	case KindList:
		return len(v.list.Items) > 0
	case KindTuple:
		return len(v.tuple) > 0
	case KindSet:
		return len(v.set.order) > 0
	case KindFrozenSet:
		return len(v.frozenset.order) > 0
	case KindDict:
		return len(v.dict.order) > 0
	case KindBytes:
		return len(v.bytes) > 0
	case KindByteArray:
		return len(v.bytearray.Bytes) > 0
	case KindMemoryView:
		return true
	case KindRange:
		return rangeLen(v.rng) > 0
	default:
		return false
	}
}

// IsHashable reports whether v may be used as a Dict key or Set element.
func (v Value) IsHashable() bool {
	switch v.kind {
	case KindInt, KindFloat, KindBool, KindNone, KindStr, KindBytes, KindRange, KindComplex:
		return true
	case KindTuple:
		for _, e := range v.tuple {
			if !e.IsHashable() {
				return false
			}
		}
		return true
	case KindFrozenSet:
		return true
	default:
		return false
	}
}

func rangeLen(r Range) int64 {
	if r.Step == 0 {
		return 0
	}
	if r.Step > 0 {
		if r.Stop <= r.Start {
			return 0
		}
		return (r.Stop - r.Start + r.Step - 1) / r.Step
	}
	if r.Stop >= r.Start {
		return 0
	}
	return (r.Start - r.Stop - r.Step - 1) / (-r.Step)
}

func newSet() *Set { return &Set{index: make(map[string]int)} }

func (s *Set) add(v Value) error {
	key, err := HashKey(v)
	if err != nil {
		return err
	}
	if _, ok := s.index[key]; ok {
		return nil
	}
	s.index[key] = len(s.order)
	s.order = append(s.order, v)
	return nil
}

// Items returns the set's elements in insertion order.
func (s *Set) Items() []Value { return s.order }

func newDict() *Dict {
	return &Dict{index: make(map[string]int), vals: make(map[string]Value)}
}

func (d *Dict) set(k, v Value) error {
	key, err := HashKey(k)
	if err != nil {
		return err
	}
	if _, ok := d.index[key]; !ok {
		d.index[key] = len(d.order)
		d.order = append(d.order, k)
	}
	d.vals[key] = v
	return nil
}

func (d *Dict) get(k Value) (Value, bool, error) {
	key, err := HashKey(k)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := d.vals[key]
	return v, ok, nil
}

func (d *Dict) pop(k Value) (Value, bool, error) {
	key, err := HashKey(k)
	if err != nil {
		return Value{}, false, err
	}
	v, ok := d.vals[key]
	if !ok {
		return Value{}, false, nil
	}
	delete(d.vals, key)
	i := d.index[key]
	delete(d.index, key)
	d.order = append(d.order[:i], d.order[i+1:]...)
	for k2, idx := range d.index {
		if idx > i {
			d.index[k2] = idx - 1
		}
	}
	return v, true, nil
}

// Keys returns the dict's keys in insertion order.
func (d *Dict) Keys() []Value { return d.order }

// Values returns the dict's values, in the same order as Keys.
func (d *Dict) Values() []Value {
	out := make([]Value, len(d.order))
	for i, k := range d.order {
		key, _ := HashKey(k)
		out[i] = d.vals[key]
	}
	return out
}
