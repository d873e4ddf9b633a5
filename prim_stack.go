package main

// registerStackPrimitives installs dup/swap/drop/over/rot.
func registerStackPrimitives(r *Registry) {
	r.Register("dup", func(ip *Interpreter) error {
		v, err := ip.peek()
		if err != nil {
			return StackUnderflowError{Op: "dup"}
		}
		ip.push(v)
		return nil
	})

	r.Register("swap", func(ip *Interpreter) error {
		n := len(ip.Stack)
		if n < 2 {
			return StackUnderflowError{Op: "swap"}
		}
		ip.Stack[n-1], ip.Stack[n-2] = ip.Stack[n-2], ip.Stack[n-1]
		return nil
	})

	r.Register("drop", func(ip *Interpreter) error {
		if _, err := ip.pop(); err != nil {
			return StackUnderflowError{Op: "drop"}
		}
		return nil
	})

	r.Register("over", func(ip *Interpreter) error {
		n := len(ip.Stack)
		if n < 2 {
			return StackUnderflowError{Op: "over"}
		}
		ip.push(ip.Stack[n-2])
		return nil
	})

	r.Register("rot", func(ip *Interpreter) error {
		n := len(ip.Stack)
		if n < 3 {
			return StackUnderflowError{Op: "rot"}
		}
		ip.Stack[n-3], ip.Stack[n-2], ip.Stack[n-1] = ip.Stack[n-2], ip.Stack[n-1], ip.Stack[n-3]
		return nil
	})
}
