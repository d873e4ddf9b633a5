package main

import "github.com/KarthikSBhattar/forge-lang/internal/arena"

// registerMemPrimitives installs alloc/free/write/read over the
// interpreter's byte arena.
func registerMemPrimitives(r *Registry) {
	r.Register("alloc", func(ip *Interpreter) error {
		size, err := ip.pop()
		if err != nil {
			return err
		}
		if !size.IsInt() {
			return InvalidOperationError{Op: "alloc", Reason: "expects an integer size"}
		}
		ptr, err := ip.Mem.Alloc(int(size.AsInt()))
		if err != nil {
			return asMemoryError("alloc", err)
		}
		ip.push(IntVal(int64(ptr)))
		return nil
	})

	r.Register("free", func(ip *Interpreter) error {
		ptr, err := ip.pop()
		if err != nil {
			return err
		}
		if !ptr.IsInt() {
			return InvalidOperationError{Op: "free", Reason: "expects an integer pointer"}
		}
		if err := ip.Mem.Free(int(ptr.AsInt())); err != nil {
			return asMemoryError("free", err)
		}
		return nil
	})

	r.Register("write", func(ip *Interpreter) error {
		// Pointer on top, value underneath: `10 alloc 65 over write` uses
		// `over` to re-fetch the pointer onto the top of stack just before
		// the write.
		ptr, err := ip.pop()
		if err != nil {
			return err
		}
		value, err := ip.pop()
		if err != nil {
			return err
		}
		if !ptr.IsInt() || !value.IsInt() {
			return InvalidOperationError{Op: "write", Reason: "expects integer pointer and value"}
		}
		if err := ip.Mem.Write(int(ptr.AsInt()), int(value.AsInt())); err != nil {
			return asMemoryError("write", err)
		}
		return nil
	})

	r.Register("read", func(ip *Interpreter) error {
		ptr, err := ip.pop()
		if err != nil {
			return err
		}
		if !ptr.IsInt() {
			return InvalidOperationError{Op: "read", Reason: "expects an integer pointer"}
		}
		v, err := ip.Mem.Read(int(ptr.AsInt()))
		if err != nil {
			return asMemoryError("read", err)
		}
		ip.push(IntVal(int64(v)))
		return nil
	})
}

func asMemoryError(op string, err error) error {
	if aerr, ok := err.(arena.Error); ok {
		return MemoryError{Op: op, Reason: aerr.Reason}
	}
	return MemoryError{Op: op, Reason: err.Error()}
}
