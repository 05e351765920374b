package structured

import (
	"encoding/json"
	"fmt"
)

// JSON type names as reported in errors and in Flatten output.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// TypeOf returns the JSON type name of the given value: "object", "array",
// "string", "number", "boolean" or "null". Values without a JSON equivalent
// are reported with their Go type.
func TypeOf(val interface{}) string {
	switch dereference(val).(type) {
	case map[string]interface{}:
		return TypeObject
	case []interface{}:
		return TypeArray
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return TypeNumber
	case nil:
		return TypeNull
	}
	return fmt.Sprintf("%T", val)
}
