package sliceutil

import (
	"reflect"
)

// Copy returns a shallow copy of the given slice. Returns nil if the given
// slice is nil. Returns an empty slice if the given slice is empty.
func Copy[S ~[]E, E any](source S) S {
	return CopyWithCap(source, 0)
}

// CopyWithCap returns a copy of the given slice, created with the given
// capacity (or the original capacity if smaller than the slice's length).
func CopyWithCap[S ~[]E, E any](source S, capacity int) S {
	if source == nil {
		return nil
	}
	c := cap(source)
	if capacity > c {
		c = capacity
	}
	dup := make(S, len(source), c)
	copy(dup, source)
	return dup
}

// Append appends all elements of source to target.
//
// If makeCopy is true, it returns the result in a newly allocated slice and
// leaves the source/target slices unchanged.
func Append[S ~[]E, E any](source S, target S, makeCopy bool) (res S) {
	if source == nil && target == nil {
		return nil
	}
	res = target
	if makeCopy {
		res = CopyWithCap(target, len(target)+len(source))
	}
	res = append(res, source...)
	return
}

// Squash appends all elements of source to target, unless an element exists
// already in the target or any of the already appended elements.
//
// If makeCopy is true, it returns the result in a newly allocated slice and
// leaves the source/target slices unchanged.
func Squash[S ~[]E, E any](source S, target S, makeCopy bool) (res S) {
	if source == nil && target == nil {
		return nil
	}
	res = target
	if makeCopy {
		res = CopyWithCap(target, len(target)+len(source))
	}
	for _, el := range source {
		if !Contains(res, el) {
			res = append(res, el)
		}
	}
	return
}

// SquashAndDedupe appends all elements of source to target and returns the
// deduped result.
//
// If makeCopy is true, it returns the result in a newly allocated slice and
// leaves the source/target slices unchanged.
func SquashAndDedupe[S ~[]E, E any](source S, target S, makeCopy bool) (res S) {
	if source == nil && target == nil {
		return nil
	}
	target = Dedupe(target, makeCopy)
	return Squash(source, target, makeCopy)
}

// Dedupe removes any duplicates of all elements in the target slice.
//
// If makeCopy is true, it returns the result in a newly allocated slice and
// leaves the target slice unchanged.
func Dedupe[S ~[]E, E any](target S, makeCopy bool) (res S) {
	if target == nil {
		return nil
	}
	res = target[:0] // empty slice with same backing array as target
	if makeCopy {
		res = make(S, 0, len(target))
	}
	for _, el := range target {
		if !Contains(res, el) {
			res = append(res, el)
		}
	}
	return
}

// Contains returns true if the slice contains the given element, comparing
// elements with reflect.DeepEqual.
func Contains[S ~[]E, E any](slice S, element E) bool {
	return ContainsFn(slice, element, func(e1, e2 E) bool {
		return reflect.DeepEqual(e1, e2)
	})
}

// ContainsFn returns true if the slice contains the given element using the
// provided function to compare elements, false otherwise.
func ContainsFn[S ~[]E, E any](slice S, element E, equal func(e1, e2 E) bool) bool {
	for _, el := range slice {
		if equal(el, element) {
			return true
		}
	}
	return false
}
