package structured

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		path     string
		sources  []string
		expected string
	}{
		{
			name:     "flat maps",
			target:   `{"a":1,"b":2}`,
			sources:  []string{`{"b":20,"c":30}`},
			expected: `{"a":1,"b":20,"c":30}`,
		},
		{
			name:     "nested maps",
			target:   `{"a":{"x":1},"b":2}`,
			sources:  []string{`{"a":{"y":2}}`},
			expected: `{"a":{"x":1,"y":2},"b":2}`,
		},
		{
			name:     "nil source value removes key",
			target:   `{"a":1,"b":2}`,
			sources:  []string{`{"b":null}`},
			expected: `{"a":1}`,
		},
		{
			name:     "type mismatch replaces",
			target:   `{"a":{"x":1}}`,
			sources:  []string{`{"a":"now a string"}`},
			expected: `{"a":"now a string"}`,
		},
		{
			name:     "last source wins",
			target:   `{"a":1}`,
			sources:  []string{`{"a":2}`, `{"a":3}`},
			expected: `{"a":3}`,
		},
		{
			name:     "arrays squash by default",
			target:   `{"a":[1,2]}`,
			sources:  []string{`{"a":[2,3]}`},
			expected: `{"a":[1,2,3]}`,
		},
		{
			name:     "merge at path",
			target:   `{"sub":{"a":1}}`,
			path:     "/sub",
			sources:  []string{`{"b":2}`},
			expected: `{"sub":{"a":1,"b":2}}`,
		},
		{
			name:     "merge at missing path creates it",
			target:   `{}`,
			path:     "/one/two",
			sources:  []string{`{"a":1}`},
			expected: `{"one":{"two":{"a":1}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources := make([]interface{}, len(tt.sources))
			for i, src := range tt.sources {
				sources[i] = parse(src)
			}
			res, err := MergeCopy(parse(tt.target), ParsePath(tt.path), sources...)
			require.NoError(t, err)
			require.Equal(t, parse(tt.expected), res)
		})
	}
}

func TestMergeCopyLeavesInputsUntouched(t *testing.T) {
	target := parse(`{"a":{"x":1}}`)
	source := parse(`{"a":{"y":2}}`)

	res, err := MergeCopy(target, nil, source)
	require.NoError(t, err)
	require.Equal(t, parse(`{"a":{"x":1,"y":2}}`), res)
	require.Equal(t, parse(`{"a":{"x":1}}`), target)
	require.Equal(t, parse(`{"a":{"y":2}}`), source)
}

func TestMergeNoSources(t *testing.T) {
	target := parse(`{"a":1}`)
	res, err := Merge(target, nil)
	require.NoError(t, err)
	require.Equal(t, target, res)
}

func TestMergeArrayModes(t *testing.T) {
	tests := []struct {
		mode     ArrayMergeMode
		target   string
		source   string
		expected string
	}{
		{
			mode:     ArrayMergeModes.Append(),
			target:   `[1,2,2]`,
			source:   `[2,3]`,
			expected: `[1,2,2,2,3]`,
		},
		{
			mode:     ArrayMergeModes.Squash(),
			target:   `[1,2,2]`,
			source:   `[2,3]`,
			expected: `[1,2,2,3]`,
		},
		{
			mode:     ArrayMergeModes.Dedupe(),
			target:   `[1,2,2]`,
			source:   `[2,3]`,
			expected: `[1,2,3]`,
		},
		{
			mode:     ArrayMergeModes.Replace(),
			target:   `[1,2,2]`,
			source:   `[2,3]`,
			expected: `[2,3]`,
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			opts := MergeOptions{MakeCopy: true, ArrayMergeMode: tt.mode}
			res, err := MergeWithOptions(opts, parse(tt.target), nil, parse(tt.source))
			require.NoError(t, err)
			require.Equal(t, parse(tt.expected), res)
		})
	}
}

func TestArrayMergeModeValidate(t *testing.T) {
	require.NoError(t, ArrayMergeMode("").Validate())
	require.NoError(t, ArrayMergeModes.Append().Validate())
	require.Error(t, ArrayMergeMode("bogus").Validate())
}
