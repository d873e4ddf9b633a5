package main

// PyStr renders v the way Python's str() builtin would: unlike Display
// (used by print, which lowercases the singletons), str() capitalizes
// True/False/None.
func PyStr(v Value) string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindNone:
		return "None"
	default:
		return Display(v)
	}
}
