package common

// StringArg extracts a string argument by key. Returns the empty string
// when the argument is absent or not a string.
func StringArg(args map[string]interface{}, key string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return ""
}

// IntArg extracts an integer argument by key. JSON numbers arrive as
// float64, so both float64 and int are accepted. Returns 0 when the
// argument is absent or not numeric.
func IntArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// StringSliceArg extracts a list-of-strings argument by key. JSON arrays
// arrive as []interface{}; non-string elements are skipped. Returns nil
// when the argument is absent or not a list.
func StringSliceArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// PathFromArgs extracts the filesystem path a tool operates on, checking
// the argument names used across the tool surface.
func PathFromArgs(args map[string]interface{}) string {
	if p := StringArg(args, "file_path"); p != "" {
		return p
	}
	return StringArg(args, "directory_path")
}

// DatabaseFromArgs extracts the Notion database identifier argument.
func DatabaseFromArgs(args map[string]interface{}) string {
	return StringArg(args, "database_id")
}
