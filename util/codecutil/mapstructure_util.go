package codecutil

import (
	"encoding"
	"encoding/base64"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
var byteSliceType = reflect.TypeOf([]byte(nil))

// MapDecode decodes a parsed, generic source structure that was e.g. produced
// by unmarshaling JSON
//
//	var any interface{}
//	_ = json.Unmarshal(jsonText, &any)
//
// into the destination object dst (usually a pointer to a struct value). Any
// `json:...` tags defined on the destination structure's member fields are
// used for unmarshaling (just like when unmarshaling JSON text).
//
// The implementation uses github.com/mitchellh/mapstructure to do the
// decoding, with the following special decoding hooks:
//   - decodes with the 'UnmarshalText(text []byte) error' function if the
//     destination implements encoding.TextUnmarshaler
//   - decodes strings into []byte fields using base64
func MapDecode(src interface{}, dst interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     dst,
		DecodeHook: decodeHook,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(src)
}

func decodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if s, ok := data.(string); ok {
		elem := t
		for elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if reflect.PointerTo(elem).Implements(textUnmarshaler) {
			instance := reflect.New(elem)
			ret := instance.Interface()
			err := ret.(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
			if err != nil {
				return nil, err
			}
			return ret, nil
		}
		if elem == byteSliceType {
			// byte slices are marshaled to base64 encoded strings in JSON
			return base64.StdEncoding.DecodeString(s)
		}
	}
	return data, nil
}
