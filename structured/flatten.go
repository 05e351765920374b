package structured

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/docstore-go/util/maputil"
)

// Flatten converts the given data structure into a list of flattened paths,
// their corresponding values and type information.
//
// The data structure must consist of only basic types, map[string]interface{}
// and []interface{} (the types used when unmarshaling JSON into a generic
// interface{}).
//
// The result is a slice of triplets [path, value, type]
// E.g. [ "/", "{}", "object"]
//      [ "/first", "joe", "string" ]
//      [ "/age", "24", "number" ]
//      [ "/children", "[]", "array" ]
//      [ "/children/0", "fred", "string" ]
//
// Possible types are: object, array, string, number, boolean, null
//
// Slashes in path elements are encoded according to the JSON Pointer format
// defined in RFC 6901: https://tools.ietf.org/html/rfc6901
func Flatten(structure interface{}, separator ...string) ([][3]string, error) {
	f := &flatten{
		separator: defaultSeparator,
	}
	if len(separator) > 0 {
		f.separator = separator[0]
	}
	if f.separator == defaultSeparator {
		f.encoder = rfc6901Encoder
	} else {
		f.encoder = strings.NewReplacer("~", "~0", f.separator, "~1")
	}

	rootPath := "$"
	if f.separator == defaultSeparator {
		rootPath = defaultSeparator
	}
	list, err := f.doFlatten(nil, rootPath, dereference(structure))
	if err != nil {
		return nil, err
	}

	var res [][3]string
	for _, entry := range list {
		res = append(res, [3]string{entry.key, entry.val, entry.typ})
	}
	return res, nil
}

type flatten struct {
	separator string
	encoder   *strings.Replacer
}

type kvt struct {
	key string
	val string
	typ string
}

func (f *flatten) doFlatten(list []*kvt, key string, v interface{}) ([]*kvt, error) {
	entry, err := f.kvtFromValue(v)
	if err != nil {
		return nil, err
	}
	entry.key = key
	list = append(list, entry)

	switch vv := v.(type) {
	case map[string]interface{}:
		for _, k := range maputil.SortedKeys(vv) {
			list, err = f.doFlatten(list, f.createKey(key, k), vv[k])
			if err != nil {
				return nil, err
			}
		}
	case []interface{}:
		for idx, sub := range vv {
			list, err = f.doFlatten(list, f.createKey(key, strconv.Itoa(idx)), sub)
			if err != nil {
				return nil, err
			}
		}
	}

	return list, nil
}

// kvtFromValue renders the given value and its JSON type name.
func (f *flatten) kvtFromValue(v interface{}) (*kvt, error) {
	typ := TypeOf(v)
	switch typ {
	case TypeObject:
		return &kvt{val: "{}", typ: typ}, nil
	case TypeArray:
		return &kvt{val: "[]", typ: typ}, nil
	case TypeString:
		return &kvt{val: v.(string), typ: typ}, nil
	case TypeBoolean:
		return &kvt{val: strconv.FormatBool(v.(bool)), typ: typ}, nil
	case TypeNull:
		return &kvt{val: "null", typ: typ}, nil
	case TypeNumber:
		if n, ok := v.(json.Number); ok {
			return &kvt{val: n.String(), typ: typ}, nil
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errors.E("flatten", errors.K.Invalid, err, "value", v)
		}
		return &kvt{val: string(b), typ: typ}, nil
	}
	return nil, errors.E("flatten", errors.K.Invalid, "type", fmt.Sprintf("%T", v))
}

func (f *flatten) createKey(parent string, name string) string {
	enc := f.encoder.Replace(name)
	if parent == defaultSeparator {
		return defaultSeparator + enc
	}
	return parent + f.separator + enc
}
