package sdk

// GetString safely extracts a string value from Config.
// Returns the value and true if found and is a string.
func GetString(config Config, key string) (string, bool) {
	v, ok := config[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt safely extracts an int value from Config. Handles int, int64
// and float64 (YAML and JSON numbers decode to different Go types).
func GetInt(config Config, key string) (int, bool) {
	v, ok := config[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetBool safely extracts a bool value from Config.
func GetBool(config Config, key string) (bool, bool) {
	v, ok := config[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetStringSlice safely extracts a []string value from Config. Accepts
// both []string and []interface{} holding only strings.
func GetStringSlice(config Config, key string) ([]string, bool) {
	v, ok := config[key]
	if !ok {
		return nil, false
	}
	switch arr := v.(type) {
	case []string:
		result := make([]string, len(arr))
		copy(result, arr)
		return result, true
	case []interface{}:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	default:
		return nil, false
	}
}
