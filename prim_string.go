package main

import "strings"

// registerStringPrimitives installs the str_* collection methods.
func registerStringPrimitives(r *Registry) {
	r.Register("str_upper", stringUnary("str_upper", strings.ToUpper))
	r.Register("str_lower", stringUnary("str_lower", strings.ToLower))
	r.Register("str_strip", stringUnary("str_strip", strings.TrimSpace))
	r.Register("str_capitalize", stringUnary("str_capitalize", capitalize))

	r.Register("str_split", func(ip *Interpreter) error {
		s, err := popStr(ip, "str_split")
		if err != nil {
			return err
		}
		fields := strings.Fields(s)
		items := make([]Value, len(fields))
		for i, f := range fields {
			items[i] = StrVal(f)
		}
		ip.push(ListVal(items))
		return nil
	})

	r.Register("str_split_on", func(ip *Interpreter) error {
		sep, err := ip.pop()
		if err != nil {
			return err
		}
		s, err := popStr(ip, "str_split_on")
		if err != nil {
			return err
		}
		if !sep.IsStr() {
			return InvalidOperationError{Op: "str_split_on", Reason: "expects a string and a separator string"}
		}
		parts := strings.Split(s, sep.AsStr())
		items := make([]Value, len(parts))
		for i, p := range parts {
			items[i] = StrVal(p)
		}
		ip.push(ListVal(items))
		return nil
	})

	r.Register("str_join", func(ip *Interpreter) error {
		sep, err := ip.pop()
		if err != nil {
			return err
		}
		lst, err := ip.pop()
		if err != nil {
			return err
		}
		if !sep.IsStr() {
			return InvalidOperationError{Op: "str_join", Reason: "expects a separator string"}
		}
		if !lst.IsList() {
			return InvalidOperationError{Op: "str_join", Reason: "expects a list of strings"}
		}
		parts := make([]string, len(lst.AsList().Items))
		for i, v := range lst.AsList().Items {
			if !v.IsStr() {
				return InvalidOperationError{Op: "str_join", Reason: "expects a list of strings"}
			}
			parts[i] = v.AsStr()
		}
		ip.push(StrVal(strings.Join(parts, sep.AsStr())))
		return nil
	})

	r.Register("str_replace", func(ip *Interpreter) error {
		newS, err := ip.pop()
		if err != nil {
			return err
		}
		oldS, err := ip.pop()
		if err != nil {
			return err
		}
		s, err := popStr(ip, "str_replace")
		if err != nil {
			return err
		}
		if !oldS.IsStr() || !newS.IsStr() {
			return InvalidOperationError{Op: "str_replace", Reason: "expects string arguments"}
		}
		ip.push(StrVal(strings.ReplaceAll(s, oldS.AsStr(), newS.AsStr())))
		return nil
	})

	r.Register("str_find", func(ip *Interpreter) error {
		sub, err := ip.pop()
		if err != nil {
			return err
		}
		s, err := popStr(ip, "str_find")
		if err != nil {
			return err
		}
		if !sub.IsStr() {
			return InvalidOperationError{Op: "str_find", Reason: "expects a string argument"}
		}
		idx := strings.Index(s, sub.AsStr())
		ip.push(IntVal(int64(runeIndex(s, idx))))
		return nil
	})

	r.Register("str_startswith", func(ip *Interpreter) error {
		prefix, err := ip.pop()
		if err != nil {
			return err
		}
		s, err := popStr(ip, "str_startswith")
		if err != nil {
			return err
		}
		if !prefix.IsStr() {
			return InvalidOperationError{Op: "str_startswith", Reason: "expects a string argument"}
		}
		ip.push(BoolVal(strings.HasPrefix(s, prefix.AsStr())))
		return nil
	})

	r.Register("str_endswith", func(ip *Interpreter) error {
		suffix, err := ip.pop()
		if err != nil {
			return err
		}
		s, err := popStr(ip, "str_endswith")
		if err != nil {
			return err
		}
		if !suffix.IsStr() {
			return InvalidOperationError{Op: "str_endswith", Reason: "expects a string argument"}
		}
		ip.push(BoolVal(strings.HasSuffix(s, suffix.AsStr())))
		return nil
	})

	r.Register("str_isdigit", func(ip *Interpreter) error {
		s, err := popStr(ip, "str_isdigit")
		if err != nil {
			return err
		}
		ip.push(BoolVal(isAllFunc(s, isDigitRune)))
		return nil
	})

	r.Register("str_isalpha", func(ip *Interpreter) error {
		s, err := popStr(ip, "str_isalpha")
		if err != nil {
			return err
		}
		ip.push(BoolVal(isAllFunc(s, isAlphaRune)))
		return nil
	})
}

func popStr(ip *Interpreter, op string) (string, error) {
	v, err := ip.pop()
	if err != nil {
		return "", err
	}
	if !v.IsStr() {
		return "", InvalidOperationError{Op: op, Reason: "expects a string"}
	}
	return v.AsStr(), nil
}

func stringUnary(op string, fn func(string) string) Primitive {
	return func(ip *Interpreter) error {
		s, err := popStr(ip, op)
		if err != nil {
			return err
		}
		ip.push(StrVal(fn(s)))
		return nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	head := strings.ToUpper(string(r[0]))
	tail := strings.ToLower(string(r[1:]))
	return head + tail
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

func isAlphaRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAllFunc(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// runeIndex converts a byte offset (as strings.Index returns) into a rune
// offset, matching Python's str.find, which counts characters not bytes.
// -1 passes through unchanged.
func runeIndex(s string, byteIdx int) int {
	if byteIdx <= 0 {
		return byteIdx
	}
	return len([]rune(s[:byteIdx]))
}
