package structured

import (
	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/docstore-go/util/maputil"
)

// Set returns a copy of the target data structure in which the element at the
// given path is replaced with the provided value. Missing path elements are
// created as objects (maps). The final element is set unconditionally,
// regardless of its previous type, and a nil value stores JSON null (it does
// not remove the element - use Delete for removal).
//
// The target structure is never modified: maps along the path are duplicated,
// while untouched subtrees are shared with the original.
//
// The operation fails with errors.K.Invalid if a non-final path element
// resolves to anything other than an object or a missing element. The error
// carries the JSON type name of the offending value in its "type" field. An
// empty path is likewise rejected.
func Set(target interface{}, path Path, val interface{}) (interface{}, error) {
	e := errors.Template("set", errors.K.Invalid, "full_path", path)
	if len(path) == 0 {
		return nil, e("reason", "path is empty")
	}

	// a nil target is treated as an empty object
	var root map[string]interface{}
	switch t := dereference(target).(type) {
	case nil:
		root = make(map[string]interface{}, 1)
	case map[string]interface{}:
		root = maputil.Copy(t)
	default:
		return nil, e("reason", "element is not an object",
			"type", TypeOf(t),
			"path", Path{})
	}

	cursor := root
	for idx := 0; idx < len(path)-1; idx++ {
		var sub map[string]interface{}
		next, found := cursor[path[idx]]
		if !found {
			sub = make(map[string]interface{}, 1)
		} else if m, ok := next.(map[string]interface{}); ok {
			sub = maputil.Copy(m)
		} else {
			return nil, e("reason", "element is not an object",
				"type", TypeOf(next),
				"path", path[:idx+1])
		}
		cursor[path[idx]] = sub
		cursor = sub
	}

	cursor[path[len(path)-1]] = dereference(val)
	return root, nil
}
