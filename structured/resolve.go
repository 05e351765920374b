package structured

import (
	"strconv"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/docstore-go/util/numberutil"
)

// Get returns the element at the given path in the target data structure.
// It's an alias for Resolve().
func Get(path Path, target interface{}) (interface{}, error) {
	return Resolve(path, target)
}

// Resolve resolves a path on the given target structure and returns the
// element it refers to. Objects are traversed by key, arrays by decimal
// index.
//
// Returns an error kinded errors.K.NotExist if the path does not exist, or
// errors.K.Invalid if a non-final path element resolves to a leaf value or an
// array is addressed with a non-numeric segment.
func Resolve(path Path, target interface{}) (interface{}, error) {
	node := dereference(target)
	for idx, seg := range path {
		e := errors.Template("resolve", "path", path[:idx+1], "full_path", path)
		switch t := node.(type) {
		case map[string]interface{}:
			v, found := t[seg]
			if !found {
				return nil, e(errors.K.NotExist)
			}
			node = v
		case []interface{}:
			i, err := strconv.ParseInt(seg, 10, 32)
			if err != nil {
				return nil, e(errors.K.Invalid, "reason", "invalid array index")
			}
			if i < 0 || int(i) >= len(t) {
				return nil, e(errors.K.NotExist, "reason", "array index out of range")
			}
			node = t[i]
		case nil:
			return nil, e(errors.K.NotExist, "reason", "element is nil")
		default:
			return nil, e(errors.K.Invalid, "reason", "element is leaf", "type", TypeOf(t))
		}
	}
	return node, nil
}

// StringAt returns the string value at the given path in the given target
// structure. The empty string "" is returned if the path does not exist or
// the value at path is not a string.
func StringAt(target interface{}, path ...string) string {
	val, err := Resolve(path, target)
	if err != nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// Int64At returns the int64 value at the given path in the given target
// structure. 0 is returned if the path does not exist or the value at path is
// not a number.
func Int64At(target interface{}, path ...string) int64 {
	val, err := Resolve(path, target)
	if err != nil {
		return 0
	}
	return numberutil.AsInt64(val)
}

// Float64At returns the float64 value at the given path in the given target
// structure. 0 is returned if the path does not exist or the value at path is
// not a number.
func Float64At(target interface{}, path ...string) float64 {
	val, err := Resolve(path, target)
	if err != nil {
		return 0
	}
	return numberutil.AsFloat64(val)
}

// BoolAt returns the bool value at the given path in the given target
// structure. False is returned if the path does not exist or the value at
// path is not a bool.
func BoolAt(target interface{}, path ...string) bool {
	val, err := Resolve(path, target)
	if err != nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return false
}

// MapAt returns the map[string]interface{} value at the given path in the
// given target structure. Nil is returned if the path does not exist or the
// value at path is not a map.
func MapAt(target interface{}, path ...string) map[string]interface{} {
	val, err := Resolve(path, target)
	if err != nil {
		return nil
	}
	if m, ok := val.(map[string]interface{}); ok {
		return m
	}
	return nil
}

// SliceAt returns the []interface{} value at the given path in the given
// target structure. Nil is returned if the path does not exist or the value
// at path is not a slice.
func SliceAt(target interface{}, path ...string) []interface{} {
	val, err := Resolve(path, target)
	if err != nil {
		return nil
	}
	if s, ok := val.([]interface{}); ok {
		return s
	}
	return nil
}
