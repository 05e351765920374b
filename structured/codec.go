package structured

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/eluv-io/errors-go"
	"github.com/ghodss/yaml"
)

// NewUnmarshaler returns an unmarshaler that parses JSON or YAML text into
// generic structured data (map[string]interface{}, []interface{} and
// scalars).
func NewUnmarshaler() *Unmarshaler {
	return &Unmarshaler{}
}

type Unmarshaler struct {
	// UseNumber makes JSON unmarshaling parse numbers into json.Number
	// instead of float64.
	UseNumber bool
}

func (u *Unmarshaler) JSON(text []byte) (interface{}, error) {
	var v interface{}
	if u.UseNumber {
		dec := json.NewDecoder(bytes.NewReader(text))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, errors.E("unmarshal json", errors.K.Invalid, err)
		}
		return v, nil
	}
	if err := json.Unmarshal(text, &v); err != nil {
		return nil, errors.E("unmarshal json", errors.K.Invalid, err)
	}
	return v, nil
}

func (u *Unmarshaler) YAML(text []byte) (interface{}, error) {
	var v interface{}
	if err := yaml.Unmarshal(text, &v); err != nil {
		return nil, errors.E("unmarshal yaml", errors.K.Invalid, err)
	}
	return v, nil
}

// NewMarshaler returns a marshaler that writes generic structured data as
// JSON or YAML.
func NewMarshaler() *Marshaler {
	return &Marshaler{}
}

type Marshaler struct {
	// Indent is the indentation used for JSON output. Empty produces compact
	// JSON.
	Indent string
}

func (m *Marshaler) JSON(w io.Writer, data interface{}) error {
	var b []byte
	var err error
	if m.Indent != "" {
		b, err = json.MarshalIndent(dereference(data), "", m.Indent)
	} else {
		b, err = json.Marshal(dereference(data))
	}
	if err == nil {
		_, err = w.Write(b)
	}
	if err != nil {
		return errors.E("marshal json", errors.K.Invalid, err)
	}
	return nil
}

func (m *Marshaler) YAML(w io.Writer, data interface{}) error {
	b, err := yaml.Marshal(dereference(data))
	if err == nil {
		_, err = w.Write(b)
	}
	if err != nil {
		return errors.E("marshal yaml", errors.K.Invalid, err)
	}
	return nil
}
