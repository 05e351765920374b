package structured

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelete(t *testing.T) {
	tests := []struct {
		target   string
		path     string
		expected string
		deleted  bool
	}{
		{
			target:   `{"a":"va","b":"vb"}`,
			path:     "/a",
			expected: `{"b":"vb"}`,
			deleted:  true,
		},
		{
			target:   `{"a":{"b":{"c":1,"d":2}}}`,
			path:     "/a/b/c",
			expected: `{"a":{"b":{"d":2}}}`,
			deleted:  true,
		},
		{
			target:   `{"a":["x","y","z"]}`,
			path:     "/a/1",
			expected: `{"a":["x","z"]}`,
			deleted:  true,
		},
		{
			target:   `["a","b","c"]`,
			path:     "/2",
			expected: `["a","b"]`,
			deleted:  true,
		},
		{
			target:   `{"a":"va"}`,
			path:     "/b",
			expected: `{"a":"va"}`,
			deleted:  false,
		},
		{
			target:   `{"a":"va"}`,
			path:     "/a/b/c",
			expected: `{"a":"va"}`,
			deleted:  false,
		},
		{
			target:   `{"a":[1,2]}`,
			path:     "/a/5",
			expected: `{"a":[1,2]}`,
			deleted:  false,
		},
	}
	for _, tt := range tests {
		t.Run("path["+tt.path+"]", func(t *testing.T) {
			tgt := parse(tt.target)
			org := parse(tt.target)

			res, deleted := Delete(tgt, ParsePath(tt.path))
			require.Equal(t, tt.deleted, deleted)
			require.Equal(t, parse(tt.expected), res)

			// the target is never modified
			require.Equal(t, org, tgt)
		})
	}
}

func TestDeleteNilAndEmpty(t *testing.T) {
	res, deleted := Delete(nil, Path{"a"})
	require.False(t, deleted)
	require.Nil(t, res)

	d := parse(`{"a":1}`)
	res, deleted = Delete(d, nil)
	require.False(t, deleted)
	require.Equal(t, d, res)
}
