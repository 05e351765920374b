// Package store implements a small document store: named JSON documents that
// are read and written by key paths. All document surgery is delegated to the
// structured package, so every driver shares the same path semantics: missing
// intermediate objects are created on writes, and writes into non-object
// elements fail without committing a partial update.
package store

import (
	"encoding/json"

	"github.com/eluv-io/utc-go"

	"github.com/eluv-io/docstore-go/structured"
	"github.com/eluv-io/docstore-go/util/numberutil"
)

// Driver is the interface implemented by document store backends.
type Driver interface {
	// Get returns the element at path within the named document. Fails with
	// errors.K.NotExist if the document or the path does not exist. The
	// returned value is a copy and may be modified freely.
	Get(name string, path structured.Path) (interface{}, error)

	// Set replaces the element at path within the named document, creating
	// the document and missing intermediate objects as needed. An empty path
	// replaces the entire document, in which case val must be an object. The
	// value is copied: the caller's data is neither referenced nor modified.
	Set(name string, path structured.Path, val interface{}) error

	// Clear removes the element at path within the named document. Clearing
	// a non-existing document or path is not an error. An empty path removes
	// the entire document.
	Clear(name string, path structured.Path) error

	// Inc increments the number at path by delta, starting from dflt if the
	// path does not exist, and returns the new value.
	Inc(name string, path structured.Path, delta, dflt float64) (float64, error)

	// Toggle negates the boolean at path, starting from dflt if the path
	// does not exist, and returns the new value.
	Toggle(name string, path structured.Path, dflt bool) (bool, error)

	// Names returns the sorted names of all documents in the store.
	Names() ([]string, error)

	// Stat returns metadata about the named document.
	Stat(name string) (*Info, error)

	// Close releases the driver's resources.
	Close() error
}

// Info describes a stored document.
type Info struct {
	Name     string  `json:"name"`
	Size     int64   `json:"size"`
	Modified utc.UTC `json:"modified"`
}

// normalize reduces all numeric values in the document to int64 or float64,
// so documents look the same no matter whether they were just written or
// reloaded from disk.
func normalize(doc interface{}) interface{} {
	res, _ := structured.Replace(doc, func(path structured.Path, val interface{}) (bool, interface{}, error) {
		switch n := val.(type) {
		case int64, float64:
			return false, nil, nil
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return true, i, nil
			}
			f, _ := n.Float64()
			return true, f, nil
		case float32:
			return true, float64(n), nil
		case int, int8, int16, int32, uint, uint8, uint16, uint32, uint64:
			if i, err := numberutil.AsInt64Err(n); err == nil {
				return true, i, nil
			}
		}
		return false, nil, nil
	})
	return res
}
