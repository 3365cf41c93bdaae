package tasks

// Argument helpers for handlers working with the loosely typed argument
// lists the invocation decoder produces. Numbers always arrive as float64,
// mappings as map[string]any.

// StringArg returns args[i] as a string.
func StringArg(args []any, i int) (string, bool) {
	if i < 0 || i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	return s, ok
}

// NumberArg returns args[i] as a float64.
func NumberArg(args []any, i int) (float64, bool) {
	if i < 0 || i >= len(args) {
		return 0, false
	}
	n, ok := args[i].(float64)
	return n, ok
}

// BoolArg returns args[i] as a bool.
func BoolArg(args []any, i int) (bool, bool) {
	if i < 0 || i >= len(args) {
		return false, false
	}
	b, ok := args[i].(bool)
	return b, ok
}

// MapArg returns args[i] as a mapping.
func MapArg(args []any, i int) (map[string]any, bool) {
	if i < 0 || i >= len(args) {
		return nil, false
	}
	m, ok := args[i].(map[string]any)
	return m, ok
}
