package utils

import (
	"strconv"
	"strings"
)

// ToInt coerces the numeric shapes the Steam API actually sends: plain ints,
// string-encoded numbers (asset amounts, ids) and JSON-decoded float64.
// Unparseable values become 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}

// ToBool interprets Steam's boolean-ish flags: the integer 1 or the strings
// "1"/"true".
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	default:
		return false
	}
}
