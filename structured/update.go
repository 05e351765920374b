package structured

import (
	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/docstore-go/util/numberutil"
)

// Inc increments the number at the given path by delta and returns the
// updated structure and the new value. If the path does not exist, the
// increment is applied to the given default value and the result is stored at
// path, creating missing intermediate objects like Set.
//
// Fails with errors.K.Invalid if the current value at path is not a number,
// reporting the value's JSON type name, or if a non-final path element is not
// an object.
func Inc(target interface{}, path Path, delta float64, dflt float64) (interface{}, float64, error) {
	e := errors.Template("inc", errors.K.Invalid, "path", path)
	if len(path) == 0 {
		return nil, 0, e("reason", "path is empty")
	}

	res := dflt + delta
	curr, err := Resolve(path, target)
	if err == nil {
		if TypeOf(curr) != TypeNumber {
			return nil, 0, e("reason", "cannot increment non-numeric value",
				"type", TypeOf(curr), "value", curr)
		}
		res = numberutil.AsFloat64(curr) + delta
	}
	// a resolve failure other than "not exist" is reported by Set below

	updated, err := Set(target, path, res)
	if err != nil {
		return nil, 0, err
	}
	return updated, res, nil
}

// Toggle negates the boolean at the given path and returns the updated
// structure and the new value. If the path does not exist, the given default
// value is negated and stored at path, creating missing intermediate objects
// like Set.
//
// Fails with errors.K.Invalid if the current value at path is not a boolean,
// reporting the value's JSON type name, or if a non-final path element is not
// an object.
func Toggle(target interface{}, path Path, dflt bool) (interface{}, bool, error) {
	e := errors.Template("toggle", errors.K.Invalid, "path", path)
	if len(path) == 0 {
		return nil, false, e("reason", "path is empty")
	}

	res := !dflt
	curr, err := Resolve(path, target)
	if err == nil {
		b, ok := curr.(bool)
		if !ok {
			return nil, false, e("reason", "cannot toggle non-boolean value",
				"type", TypeOf(curr), "value", curr)
		}
		res = !b
	}

	updated, err := Set(target, path, res)
	if err != nil {
		return nil, false, err
	}
	return updated, res, nil
}
