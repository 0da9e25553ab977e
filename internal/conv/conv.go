package conv

import (
	"encoding/json"
	"strconv"
)

// AsInt coerces JSON-RPC request ids and numeric metadata into int. Unsupported values yield 0.
func AsInt(value interface{}) int {
	switch actual := value.(type) {
	case int:
		return actual
	case int8:
		return int(actual)
	case int16:
		return int(actual)
	case int32:
		return int(actual)
	case int64:
		return int(actual)
	case uint:
		return int(actual)
	case uint8:
		return int(actual)
	case uint16:
		return int(actual)
	case uint32:
		return int(actual)
	case uint64:
		return int(actual)
	case float32:
		return int(actual)
	case float64:
		return int(actual)
	case json.Number:
		v, _ := actual.Int64()
		return int(v)
	case string:
		v, _ := strconv.Atoi(actual)
		return v
	case *int:
		if actual == nil {
			return 0
		}
		return *actual
	}
	return 0
}
