package numberutil

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/eluv-io/errors-go"
)

// AsInt64 returns the given value as an int64.
// If the value is not a number or nil, it returns the 'empty' int 0.
func AsInt64(val interface{}) int64 {
	res, err := AsInt64Err(val)
	if err != nil {
		return 0
	}
	return res
}

// AsInt64Err returns the given value as an int64, trying to convert it from
// other number types, string or json.Number. Returns an error if the
// conversion fails.
func AsInt64Err(val interface{}) (int64, error) {
	e := errors.Template("AsInt64", errors.K.Invalid, "value", val)
	if val == nil {
		return 0, e(errors.K.NotExist)
	}
	var result int64
	switch x := val.(type) {
	case string:
		var err error
		result, err = strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, e(err)
		}
	case int:
		result = int64(x)
	case int8:
		result = int64(x)
	case int16:
		result = int64(x)
	case int32:
		result = int64(x)
	case int64:
		result = x
	case uint:
		result = int64(x)
	case uint8:
		result = int64(x)
	case uint16:
		result = int64(x)
	case uint32:
		result = int64(x)
	case uint64:
		result = int64(x)
	case float32:
		result = int64(math.Round(float64(x)))
	case float64:
		result = int64(math.Round(x))
	case json.Number:
		var err error
		result, err = x.Int64()
		if err != nil {
			return 0, e(err)
		}
	default:
		return 0, e("reason", "not a number")
	}
	return result, nil
}

// AsInt returns the given value as an int - see AsInt64.
func AsInt(val interface{}) int {
	return int(AsInt64(val))
}

// AsFloat64 returns the given value as a float64.
// If the value is not a number or nil, it returns the zero value float64 0.
func AsFloat64(val interface{}) float64 {
	res, err := AsFloat64Err(val)
	if err != nil {
		return 0
	}
	return res
}

// AsFloat64Err returns the given value as a float64, trying to convert it
// from other number types, string or json.Number. Returns an error if the
// conversion fails.
func AsFloat64Err(val interface{}) (float64, error) {
	e := errors.Template("AsFloat64", errors.K.Invalid, "value", val)
	if val == nil {
		return 0, e(errors.K.NotExist)
	}
	var result float64
	switch x := val.(type) {
	case string:
		var err error
		result, err = strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, e(err)
		}
	case int:
		result = float64(x)
	case int8:
		result = float64(x)
	case int16:
		result = float64(x)
	case int32:
		result = float64(x)
	case int64:
		result = float64(x)
	case uint:
		result = float64(x)
	case uint8:
		result = float64(x)
	case uint16:
		result = float64(x)
	case uint32:
		result = float64(x)
	case uint64:
		result = float64(x)
	case float32:
		result = float64(x)
	case float64:
		result = x
	case json.Number:
		var err error
		result, err = x.Float64()
		if err != nil {
			return 0, e(err)
		}
	default:
		return 0, e("reason", "not a number")
	}
	return result, nil
}
