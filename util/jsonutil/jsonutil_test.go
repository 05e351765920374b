package jsonutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eluv-io/docstore-go/util/jsonutil"
)

func TestMarshal(t *testing.T) {
	v := map[string]interface{}{"a": 1}

	require.Equal(t, `{"a":1}`, jsonutil.MarshalCompactString(v))
	require.Equal(t, "{\n  \"a\": 1\n}", jsonutil.MarshalString(v))
}

func TestMarshalPanics(t *testing.T) {
	require.Panics(t, func() {
		jsonutil.MarshalCompact(func() {})
	})
}

func TestUnmarshal(t *testing.T) {
	var v map[string]interface{}
	jsonutil.UnmarshalString(`{"a":1}`, &v)
	require.Equal(t, map[string]interface{}{"a": float64(1)}, v)

	require.Equal(t,
		map[string]interface{}{"a": float64(1)},
		jsonutil.UnmarshalStringToMap(`{"a":1}`))
	require.Nil(t, jsonutil.UnmarshalStringToMap(""))

	require.Equal(t,
		[]interface{}{"a", float64(1)},
		jsonutil.UnmarshalStringToAny(`["a",1]`))
	require.Nil(t, jsonutil.UnmarshalStringToAny(""))
}

func TestUnmarshalPanics(t *testing.T) {
	require.Panics(t, func() {
		jsonutil.UnmarshalStringToAny(`{"a":`)
	})
}

func TestClone(t *testing.T) {
	org := map[string]interface{}{"a": map[string]interface{}{"b": float64(1)}}

	clone, err := jsonutil.Clone(org)
	require.NoError(t, err)
	require.Equal(t, org, clone)

	clone.(map[string]interface{})["a"].(map[string]interface{})["b"] = float64(2)
	require.Equal(t, float64(1), org["a"].(map[string]interface{})["b"])

	require.Equal(t, org, jsonutil.MustClone(org))
	require.Panics(t, func() {
		jsonutil.MustClone(func() {})
	})
}
