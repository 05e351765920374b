package structured

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisit(t *testing.T) {
	var paths []string
	Visit(parse(`{"a":{"b":1},"c":[true,"x"]}`), true, func(path Path, val interface{}) bool {
		paths = append(paths, path.String())
		return true
	})
	require.Equal(t, []string{
		"/", // root
		"/a",
		"/a/b",
		"/c",
		"/c/0",
		"/c/1",
	}, paths)
}

func TestVisitStop(t *testing.T) {
	count := 0
	Visit(parse(testJson), true, func(path Path, val interface{}) bool {
		count++
		return count < 3
	})
	require.Equal(t, 3, count)
}

func TestReplace(t *testing.T) {
	d := parse(`{"a":1,"b":{"c":2}}`)
	res, err := Replace(d, func(path Path, val interface{}) (bool, interface{}, error) {
		if n, ok := val.(float64); ok {
			return true, n * 10, nil
		}
		return false, nil, nil
	})
	require.NoError(t, err)
	require.Equal(t, parse(`{"a":10,"b":{"c":20}}`), res)
}

func TestReplaceJsonNumbers(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`{"a":1,"b":2.5}`))
	dec.UseNumber()
	var d interface{}
	require.NoError(t, dec.Decode(&d))

	res, err := Replace(d, func(path Path, val interface{}) (bool, interface{}, error) {
		if n, ok := val.(json.Number); ok {
			f, err := n.Float64()
			return true, f, err
		}
		return false, nil, nil
	})
	require.NoError(t, err)
	require.Equal(t, jm{"a": float64(1), "b": 2.5}, res)
}
