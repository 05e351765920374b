package structured

import (
	"reflect"
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		target      string
		path        string
		val         string
		expected    string
		expectError bool
		errType     string
	}{
		{
			target:   `{}`,
			path:     "/a",
			val:      `"va"`,
			expected: `{"a":"va"}`,
		},
		{
			target:   `{"x":"vx"}`,
			path:     "/a",
			val:      `"va"`,
			expected: `{"x":"vx","a":"va"}`,
		},
		{
			target:   `null`,
			path:     "/one/two/three",
			val:      `{"a":"va"}`,
			expected: `{"one":{"two":{"three":{"a":"va"}}}}`,
		},
		{
			target:   `{}`,
			path:     "/a/b/c",
			val:      `1`,
			expected: `{"a":{"b":{"c":1}}}`,
		},
		{
			target:   `{"a":{"b":{"c":1,"d":2}}}`,
			path:     "/a/b/c",
			val:      `99`,
			expected: `{"a":{"b":{"c":99,"d":2}}}`,
		},
		{
			// the final element is replaced regardless of its previous type
			target:   `{"a":{"b":[1,2,3]}}`,
			path:     "/a/b",
			val:      `"now a string"`,
			expected: `{"a":{"b":"now a string"}}`,
		},
		{
			// nil stores JSON null and does not remove the element
			target:   `{"a":{"b":1}}`,
			path:     "/a/b",
			val:      `null`,
			expected: `{"a":{"b":null}}`,
		},
		{
			target:      `{"a":5}`,
			path:        "/a/b",
			val:         `1`,
			expectError: true,
			errType:     "number",
		},
		{
			target:      `{"a":"leaf"}`,
			path:        "/a/b/c",
			val:         `1`,
			expectError: true,
			errType:     "string",
		},
		{
			target:      `{"a":[1,2,3]}`,
			path:        "/a/b",
			val:         `1`,
			expectError: true,
			errType:     "array",
		},
		{
			target:      `{"a":null}`,
			path:        "/a/b",
			val:         `1`,
			expectError: true,
			errType:     "null",
		},
		{
			target:      `{"a":true}`,
			path:        "/a/b",
			val:         `1`,
			expectError: true,
			errType:     "boolean",
		},
		{
			// non-object root
			target:      `[1,2,3]`,
			path:        "/a",
			val:         `1`,
			expectError: true,
			errType:     "array",
		},
	}
	for _, tt := range tests {
		t.Run("path["+tt.path+"]", func(t *testing.T) {
			tgt := parse(tt.target)
			org := parse(tt.target)
			val := parse(tt.val)

			res, err := Set(tgt, ParsePath(tt.path), val)
			if tt.expectError {
				require.Error(t, err)
				require.True(t, errors.IsKind(errors.K.Invalid, err))
				require.Contains(t, err.Error(), tt.errType)
				require.Nil(t, res)
			} else {
				require.NoError(t, err)
				require.Equal(t, parse(tt.expected), res)
			}

			// the target is never modified
			require.Equal(t, org, tgt)
		})
	}
}

func TestSetEmptyPath(t *testing.T) {
	res, err := Set(parse(`{"a":1}`), nil, "val")
	require.Error(t, err)
	require.True(t, errors.IsKind(errors.K.Invalid, err))
	require.Nil(t, res)

	res, err = Set(nil, Path{}, "val")
	require.Error(t, err)
	require.Nil(t, res)
}

func TestSetNilTarget(t *testing.T) {
	res, err := Set(nil, Path{"a"}, "va")
	require.NoError(t, err)
	require.Equal(t, jm{"a": "va"}, res)
}

func TestSetLastWriteWins(t *testing.T) {
	d := parse(testJson)
	path := ParsePath("/store/bicycle/color")

	d1, err := Set(d, path, "blue")
	require.NoError(t, err)
	d2, err := Set(d1, path, "green")
	require.NoError(t, err)

	direct, err := Set(d, path, "green")
	require.NoError(t, err)
	require.Equal(t, direct, d2)
}

func TestSetSharesUntouchedSubtrees(t *testing.T) {
	d := parse(testJson)

	res, err := Set(d, Path{"expensive"}, float64(99))
	require.NoError(t, err)

	// subtrees not on the modified path are shared, not duplicated
	store := reflect.ValueOf(d.(jm)["store"]).Pointer()
	resStore := reflect.ValueOf(res.(jm)["store"]).Pointer()
	require.Equal(t, store, resStore)
}

func TestSetPointerTargets(t *testing.T) {
	tgt := parse(`{"a":{"b":1}}`)
	val := parse(`2`)
	res, err := Set(&tgt, ParsePath("/a/b"), &val)
	require.NoError(t, err)
	require.Equal(t, parse(`{"a":{"b":2}}`), res)
}
