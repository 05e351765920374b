package structured

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	res, err := Flatten(parse(`{
		"first": "joe",
		"last": "doe",
		"age": 24,
		"active": true,
		"nickname": null,
		"children": ["fred", "cathy"]
	}`))
	require.NoError(t, err)
	require.Equal(t, [][3]string{
		{"/", "{}", "object"},
		{"/active", "true", "boolean"},
		{"/age", "24", "number"},
		{"/children", "[]", "array"},
		{"/children/0", "fred", "string"},
		{"/children/1", "cathy", "string"},
		{"/first", "joe", "string"},
		{"/last", "doe", "string"},
		{"/nickname", "null", "null"},
	}, res)
}

func TestFlattenScalarRoot(t *testing.T) {
	res, err := Flatten(parse(`"hello"`))
	require.NoError(t, err)
	require.Equal(t, [][3]string{{"/", "hello", "string"}}, res)
}

func TestFlattenEscapesSeparators(t *testing.T) {
	res, err := Flatten(parse(`{"a/b": 1}`))
	require.NoError(t, err)
	require.Equal(t, [][3]string{
		{"/", "{}", "object"},
		{"/a~1b", "1", "number"},
	}, res)
}

func TestFlattenCustomSeparator(t *testing.T) {
	res, err := Flatten(parse(`{"a": {"b": 1}}`), ".")
	require.NoError(t, err)
	require.Equal(t, [][3]string{
		{"$", "{}", "object"},
		{"$.a", "{}", "object"},
		{"$.a.b", "1", "number"},
	}, res)
}

func TestFlattenInvalidType(t *testing.T) {
	_, err := Flatten(map[string]interface{}{"fn": func() {}})
	require.Error(t, err)
}
