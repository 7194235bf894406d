package utils

import (
	"strconv"
)

// ScalarString converts a decoded scalar to its string form.
// nil becomes the empty string. ok is false for maps, slices and other non-scalar values.
func ScalarString(val any) (s string, ok bool) {
	switch v := val.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	default:
		return "", false
	}
}

// ToString converts various types to string. Non-scalar values become "".
func ToString(val any) string {
	s, _ := ScalarString(val)
	return s
}
