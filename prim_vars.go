package main

// registerVarPrimitives installs store and load.
func registerVarPrimitives(r *Registry) {
	r.Register("store", func(ip *Interpreter) error {
		name, err := ip.pop()
		if err != nil {
			return err
		}
		value, err := ip.pop()
		if err != nil {
			return err
		}
		if !name.IsStr() {
			return InvalidOperationError{Op: "store", Reason: "variable name must be a string"}
		}
		ip.Vars[name.AsStr()] = value
		return nil
	})

	r.Register("load", func(ip *Interpreter) error {
		name, err := ip.pop()
		if err != nil {
			return err
		}
		if !name.IsStr() {
			return InvalidOperationError{Op: "load", Reason: "variable name must be a string"}
		}
		v, ok := ip.Vars[name.AsStr()]
		if !ok {
			return InvalidOperationError{Op: "load", Reason: "undefined variable '" + name.AsStr() + "'"}
		}
		ip.push(v)
		return nil
	})
}
