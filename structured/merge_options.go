package structured

import "github.com/eluv-io/errors-go"

// MergeOptions are the options available for merge operations.
type MergeOptions struct {
	// MakeCopy controls whether source structures may end up shared with the
	// merge result.
	//
	// If MakeCopy is false, maps and arrays of the sources may be referenced
	// directly from the result (and modified by subsequent merges).
	//
	// If MakeCopy is true, containers are duplicated before being merged, so
	// target and sources remain unmodified and unreferenced. The copy is
	// shallow: leaf values are still shared.
	MakeCopy bool

	// The mode for merging arrays. See ArrayMergeMode.
	ArrayMergeMode ArrayMergeMode
}

// ArrayMergeMode defines a mode for merging arrays.
type ArrayMergeMode string

func (m ArrayMergeMode) Validate() error {
	switch m {
	case "",
		ArrayMergeModes.Append(),
		ArrayMergeModes.Squash(),
		ArrayMergeModes.Dedupe(),
		ArrayMergeModes.Replace():
		return nil
	}
	return errors.NoTrace("ArrayMergeMode.Validate", errors.K.Invalid, "mode", m)
}

// ArrayMergeModes is the enum of ArrayMergeMode.
const ArrayMergeModes arrayMergeModeEnum = 0

type arrayMergeModeEnum int

// Append mode appends all elements of the source array to the end of the
// target array. Duplicates are not removed.
func (arrayMergeModeEnum) Append() ArrayMergeMode { return "append" }

// Squash mode appends all elements of the source array to the end of the
// target array, except if the same element already exists in the merged array
// right before the element is appended.
func (arrayMergeModeEnum) Squash() ArrayMergeMode { return "squash" }

// Dedupe mode appends all elements of the source array to the end of the
// target array and then removes any duplicates.
func (arrayMergeModeEnum) Dedupe() ArrayMergeMode { return "dedupe" }

// Replace mode replaces the target array with the source array. No merging
// occurs.
func (arrayMergeModeEnum) Replace() ArrayMergeMode { return "replace" }
