package main

// popCount pops the top of stack and requires it to be a non-negative Int,
// the shape every container-building primitive's count argument takes.
func (ip *Interpreter) popCount(op string) (int, error) {
	v, err := ip.pop()
	if err != nil {
		return 0, err
	}
	if !v.IsInt() {
		return 0, InvalidOperationError{Op: op, Reason: "expects an integer count"}
	}
	if v.AsInt() < 0 {
		return 0, InvalidOperationError{Op: op, Reason: "count must be non-negative"}
	}
	return int(v.AsInt()), nil
}

// popN pops n items in their LIFO (most-recently-pushed-first) order.
func (ip *Interpreter) popN(n int) ([]Value, error) {
	items := make([]Value, n)
	for i := 0; i < n; i++ {
		v, err := ip.pop()
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

// popReversed pops n items and returns them in push order (first pushed
// first), the contract every list/tuple/bytes/bytearray builder uses.
func (ip *Interpreter) popReversed(n int) ([]Value, error) {
	items, err := ip.popN(n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}
