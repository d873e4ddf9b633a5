package main

// registerDictPrimitives installs the dict_* collection methods.
// dict_get returns None for a missing key rather than erroring.
func registerDictPrimitives(r *Registry) {
	r.Register("dict_keys", func(ip *Interpreter) error {
		d, err := popDict(ip, "dict_keys")
		if err != nil {
			return err
		}
		ip.push(ListVal(d.Keys()))
		return nil
	})

	r.Register("dict_values", func(ip *Interpreter) error {
		d, err := popDict(ip, "dict_values")
		if err != nil {
			return err
		}
		ip.push(ListVal(d.Values()))
		return nil
	})

	r.Register("dict_items", func(ip *Interpreter) error {
		d, err := popDict(ip, "dict_items")
		if err != nil {
			return err
		}
		keys, vals := d.Keys(), d.Values()
		items := make([]Value, len(keys))
		for i := range keys {
			items[i] = TupleVal([]Value{keys[i], vals[i]})
		}
		ip.push(ListVal(items))
		return nil
	})

	r.Register("dict_get", func(ip *Interpreter) error {
		key, err := ip.pop()
		if err != nil {
			return err
		}
		d, err := popDict(ip, "dict_get")
		if err != nil {
			return err
		}
		if !key.IsHashable() {
			return InvalidOperationError{Op: "dict_get", Reason: "unhashable type used as key"}
		}
		v, ok, err := d.get(key)
		if err != nil {
			return err
		}
		if !ok {
			ip.push(NoneVal())
			return nil
		}
		ip.push(v)
		return nil
	})

	r.Register("dict_set", func(ip *Interpreter) error {
		value, err := ip.pop()
		if err != nil {
			return err
		}
		key, err := ip.pop()
		if err != nil {
			return err
		}
		d, err := popDict(ip, "dict_set")
		if err != nil {
			return err
		}
		if !key.IsHashable() {
			return InvalidOperationError{Op: "dict_set", Reason: "unhashable type used as key"}
		}
		if err := d.set(key, value); err != nil {
			return err
		}
		ip.push(Value{kind: KindDict, dict: d})
		return nil
	})

	r.Register("dict_pop", func(ip *Interpreter) error {
		key, err := ip.pop()
		if err != nil {
			return err
		}
		d, err := popDict(ip, "dict_pop")
		if err != nil {
			return err
		}
		if !key.IsHashable() {
			return InvalidOperationError{Op: "dict_pop", Reason: "unhashable type used as key"}
		}
		v, ok, err := d.pop(key)
		if err != nil {
			return err
		}
		if !ok {
			return InvalidOperationError{Op: "dict_pop", Reason: "key not found"}
		}
		ip.push(v)
		return nil
	})

	r.Register("dict_len", func(ip *Interpreter) error {
		d, err := popDict(ip, "dict_len")
		if err != nil {
			return err
		}
		ip.push(IntVal(int64(len(d.Keys()))))
		return nil
	})
}

func popDict(ip *Interpreter, op string) (*Dict, error) {
	v, err := ip.pop()
	if err != nil {
		return nil, err
	}
	if v.Kind() != KindDict {
		return nil, InvalidOperationError{Op: op, Reason: "expects a dict"}
	}
	return v.AsDict(), nil
}
