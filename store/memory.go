package store

import (
	"sync"

	"github.com/eluv-io/errors-go"
	"github.com/eluv-io/utc-go"

	"github.com/eluv-io/docstore-go/structured"
	"github.com/eluv-io/docstore-go/util/jsonutil"
	"github.com/eluv-io/docstore-go/util/maputil"
)

// NewMemory creates a document store that holds all documents in memory.
func NewMemory() Driver {
	return &memory{
		docs:     map[string]interface{}{},
		modified: map[string]utc.UTC{},
	}
}

type memory struct {
	mu       sync.RWMutex
	docs     map[string]interface{}
	modified map[string]utc.UTC
}

func (m *memory) Get(name string, path structured.Path) (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil, errors.E("get", errors.K.NotExist, "name", name)
	}
	val, err := structured.Resolve(path, doc)
	if err != nil {
		return nil, errors.E("get", err, "name", name)
	}
	return structured.Copy(val), nil
}

func (m *memory) Set(name string, path structured.Path, val interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := setInDoc(m.docs[name], path, val)
	if err != nil {
		return errors.E("set", err, "name", name)
	}
	m.put(name, doc)
	return nil
}

func (m *memory) Clear(name string, path structured.Path) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil
	}
	if len(path) == 0 {
		delete(m.docs, name)
		delete(m.modified, name)
		return nil
	}
	doc, deleted := structured.Delete(doc, path)
	if deleted {
		m.put(name, doc)
	}
	return nil
}

func (m *memory) Inc(name string, path structured.Path, delta, dflt float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, res, err := structured.Inc(m.docs[name], path, delta, dflt)
	if err != nil {
		return 0, errors.E("inc", err, "name", name)
	}
	m.put(name, doc)
	return res, nil
}

func (m *memory) Toggle(name string, path structured.Path, dflt bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, res, err := structured.Toggle(m.docs[name], path, dflt)
	if err != nil {
		return false, errors.E("toggle", err, "name", name)
	}
	m.put(name, doc)
	return res, nil
}

func (m *memory) Names() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maputil.SortedKeys(m.docs), nil
}

func (m *memory) Stat(name string) (*Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil, errors.E("stat", errors.K.NotExist, "name", name)
	}
	return &Info{
		Name:     name,
		Size:     int64(len(jsonutil.MarshalCompact(doc))),
		Modified: m.modified[name],
	}, nil
}

func (m *memory) Close() error {
	return nil
}

func (m *memory) put(name string, doc interface{}) {
	m.docs[name] = normalize(doc)
	m.modified[name] = utc.Now()
}

// setInDoc applies a path set to a document, allowing an empty path to
// replace the document as a whole (in which case the value must be an
// object). The value is copied before it is stored, so the caller's data is
// never referenced by the document and never rewritten by normalization.
func setInDoc(doc interface{}, path structured.Path, val interface{}) (interface{}, error) {
	if len(path) > 0 {
		return structured.Set(doc, path, structured.Copy(val))
	}
	if structured.TypeOf(val) != structured.TypeObject {
		return nil, errors.E("set", errors.K.Invalid,
			"reason", "document root must be an object",
			"type", structured.TypeOf(val))
	}
	return structured.Copy(val), nil
}
