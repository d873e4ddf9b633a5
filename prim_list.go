package main

import "sort"

// registerListPrimitives installs the list_* collection methods. Every
// method that "returns the collection" pushes the same *List back
// (reference semantics).
func registerListPrimitives(r *Registry) {
	r.Register("list_append", func(ip *Interpreter) error {
		elem, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_append")
		if err != nil {
			return err
		}
		lst.Items = append(lst.Items, elem)
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_pop", func(ip *Interpreter) error {
		lst, err := popList(ip, "list_pop")
		if err != nil {
			return err
		}
		n := len(lst.Items)
		if n == 0 {
			return InvalidOperationError{Op: "list_pop", Reason: "pop from empty list"}
		}
		elem := lst.Items[n-1]
		lst.Items = lst.Items[:n-1]
		ip.push(elem)
		return nil
	})

	r.Register("list_pop_at", func(ip *Interpreter) error {
		idx, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_pop_at")
		if err != nil {
			return err
		}
		if !idx.IsInt() {
			return InvalidOperationError{Op: "list_pop_at", Reason: "index must be an integer"}
		}
		i, err := resolveIndex(len(lst.Items), int(idx.AsInt()), "list_pop_at")
		if err != nil {
			return err
		}
		elem := lst.Items[i]
		lst.Items = append(lst.Items[:i], lst.Items[i+1:]...)
		ip.push(elem)
		return nil
	})

	r.Register("list_insert", func(ip *Interpreter) error {
		elem, err := ip.pop()
		if err != nil {
			return err
		}
		idx, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_insert")
		if err != nil {
			return err
		}
		if !idx.IsInt() {
			return InvalidOperationError{Op: "list_insert", Reason: "index must be an integer"}
		}
		i := clampInsertIndex(len(lst.Items), int(idx.AsInt()))
		lst.Items = append(lst.Items, Value{})
		copy(lst.Items[i+1:], lst.Items[i:])
		lst.Items[i] = elem
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_remove", func(ip *Interpreter) error {
		elem, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_remove")
		if err != nil {
			return err
		}
		idx := -1
		for i, v := range lst.Items {
			if Equal(v, elem) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return InvalidOperationError{Op: "list_remove", Reason: "element not found"}
		}
		lst.Items = append(lst.Items[:idx], lst.Items[idx+1:]...)
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_extend", func(ip *Interpreter) error {
		lst2, err := popList(ip, "list_extend")
		if err != nil {
			return err
		}
		lst1, err := popList(ip, "list_extend")
		if err != nil {
			return err
		}
		lst1.Items = append(lst1.Items, lst2.Items...)
		ip.push(Value{kind: KindList, list: lst1})
		return nil
	})

	r.Register("list_index", func(ip *Interpreter) error {
		elem, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_index")
		if err != nil {
			return err
		}
		for i, v := range lst.Items {
			if Equal(v, elem) {
				ip.push(IntVal(int64(i)))
				return nil
			}
		}
		return InvalidOperationError{Op: "list_index", Reason: "element not found"}
	})

	r.Register("list_count", func(ip *Interpreter) error {
		elem, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_count")
		if err != nil {
			return err
		}
		n := 0
		for _, v := range lst.Items {
			if Equal(v, elem) {
				n++
			}
		}
		ip.push(IntVal(int64(n)))
		return nil
	})

	r.Register("list_sort", func(ip *Interpreter) error {
		lst, err := popList(ip, "list_sort")
		if err != nil {
			return err
		}
		if err := sortValues(lst.Items); err != nil {
			return InvalidOperationError{Op: "list_sort", Reason: err.Error()}
		}
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_reverse", func(ip *Interpreter) error {
		lst, err := popList(ip, "list_reverse")
		if err != nil {
			return err
		}
		for i, j := 0, len(lst.Items)-1; i < j; i, j = i+1, j-1 {
			lst.Items[i], lst.Items[j] = lst.Items[j], lst.Items[i]
		}
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_copy", func(ip *Interpreter) error {
		lst, err := popList(ip, "list_copy")
		if err != nil {
			return err
		}
		cp := make([]Value, len(lst.Items))
		copy(cp, lst.Items)
		ip.push(Value{kind: KindList, list: &List{Items: cp}})
		return nil
	})

	r.Register("list_clear", func(ip *Interpreter) error {
		lst, err := popList(ip, "list_clear")
		if err != nil {
			return err
		}
		lst.Items = lst.Items[:0]
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_len", func(ip *Interpreter) error {
		lst, err := popList(ip, "list_len")
		if err != nil {
			return err
		}
		ip.push(IntVal(int64(len(lst.Items))))
		return nil
	})

	r.Register("list_get", func(ip *Interpreter) error {
		idx, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_get")
		if err != nil {
			return err
		}
		if !idx.IsInt() {
			return InvalidOperationError{Op: "list_get", Reason: "index must be an integer"}
		}
		i, err := resolveIndex(len(lst.Items), int(idx.AsInt()), "list_get")
		if err != nil {
			return err
		}
		ip.push(lst.Items[i])
		return nil
	})

	r.Register("list_set", func(ip *Interpreter) error {
		value, err := ip.pop()
		if err != nil {
			return err
		}
		idx, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_set")
		if err != nil {
			return err
		}
		if !idx.IsInt() {
			return InvalidOperationError{Op: "list_set", Reason: "index must be an integer"}
		}
		i, err := resolveIndex(len(lst.Items), int(idx.AsInt()), "list_set")
		if err != nil {
			return err
		}
		lst.Items[i] = value
		ip.push(Value{kind: KindList, list: lst})
		return nil
	})

	r.Register("list_slice", func(ip *Interpreter) error {
		end, err := ip.pop()
		if err != nil {
			return err
		}
		start, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := popList(ip, "list_slice")
		if err != nil {
			return err
		}
		if !start.IsInt() || !end.IsInt() {
			return InvalidOperationError{Op: "list_slice", Reason: "bounds must be integers"}
		}
		lo, hi := pySliceBounds(len(lst.Items), int(start.AsInt()), int(end.AsInt()))
		cp := make([]Value, hi-lo)
		copy(cp, lst.Items[lo:hi])
		ip.push(ListVal(cp))
		return nil
	})
}

func popList(ip *Interpreter, op string) (*List, error) {
	v, err := ip.pop()
	if err != nil {
		return nil, err
	}
	if !v.IsList() {
		return nil, InvalidOperationError{Op: op, Reason: "expects a list"}
	}
	return v.AsList(), nil
}

// resolveIndex maps a possibly-negative Python-style index into a valid
// slice position, failing if it falls outside [0, length).
func resolveIndex(length, idx int, op string) (int, error) {
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, InvalidOperationError{Op: op, Reason: "index out of range"}
	}
	return idx, nil
}

// clampInsertIndex mirrors Python's list.insert, which clamps rather than
// errors: negative indices count from the end, and any index outside
// [0, length] clamps to that boundary.
func clampInsertIndex(length, idx int) int {
	if idx < 0 {
		idx += length
		if idx < 0 {
			idx = 0
		}
	}
	if idx > length {
		idx = length
	}
	return idx
}

// pySliceBounds clamps start/end into [0, length] the way Python slicing
// does, rather than erroring on an out-of-range bound.
func pySliceBounds(length, start, end int) (int, int) {
	if start < 0 {
		start += length
	}
	if end < 0 {
		end += length
	}
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}
	if end < 0 {
		end = 0
	}
	if end > length {
		end = length
	}
	if end < start {
		end = start
	}
	return start, end
}

// sortValues sorts items ascending using Compare, failing (without
// mutating items further) the first time two elements cannot be ordered.
func sortValues(items []Value) error {
	var sortErr error
	sort.SliceStable(items, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		c, err := Compare(items[i], items[j])
		if err != nil {
			sortErr = err
			return false
		}
		return c < 0
	})
	return sortErr
}
