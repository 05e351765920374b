package structured

import (
	"strconv"

	"github.com/eluv-io/docstore-go/util/maputil"
)

// Delete removes the element of the target data structure at the given path
// and returns the potentially modified structure and a bool indicating
// whether the element was removed. Returns the structure unchanged if the
// path does not exist or is empty.
//
// Like Set, the operation is copy-on-write: containers along the path are
// duplicated and the target remains untouched.
func Delete(target interface{}, path Path) (interface{}, bool) {
	node := dereference(target)
	if node == nil || len(path) == 0 {
		return node, false
	}
	return doDelete(node, path)
}

func doDelete(node interface{}, path Path) (interface{}, bool) {
	switch t := node.(type) {
	case map[string]interface{}:
		v, found := t[path[0]]
		if !found {
			return node, false
		}
		if len(path) == 1 {
			cp := maputil.Copy(t)
			delete(cp, path[0])
			return cp, true
		}
		sub, deleted := doDelete(v, path[1:])
		if !deleted {
			return node, false
		}
		cp := maputil.Copy(t)
		cp[path[0]] = sub
		return cp, true
	case []interface{}:
		i, err := strconv.ParseInt(path[0], 10, 32)
		if err != nil || i < 0 || int(i) >= len(t) {
			return node, false
		}
		idx := int(i)
		if len(path) == 1 {
			cp := make([]interface{}, 0, len(t)-1)
			cp = append(cp, t[:idx]...)
			cp = append(cp, t[idx+1:]...)
			return cp, true
		}
		sub, deleted := doDelete(t[idx], path[1:])
		if !deleted {
			return node, false
		}
		cp := make([]interface{}, len(t))
		copy(cp, t)
		cp[idx] = sub
		return cp, true
	}
	return node, false
}
