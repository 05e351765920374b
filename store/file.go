package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/eluv-io/errors-go"
	elog "github.com/eluv-io/log-go"
	"github.com/eluv-io/utc-go"
	lru "github.com/hashicorp/golang-lru"
	"github.com/spf13/afero"

	"github.com/eluv-io/docstore-go/structured"
	"github.com/eluv-io/docstore-go/util/jsonutil"
)

var log = elog.Get("/eluv-io/docstore/store")

const (
	docExt  = ".json"
	tempExt = ".temp"
)

// NewFile creates a document store that persists each document as a JSON file
// <name>.json below the given root directory. Writes are atomic: the document
// is written to a temp file that then replaces the target file. Parsed
// documents are kept in an LRU cache.
func NewFile(fs afero.Fs, root string, cacheSize int) (Driver, error) {
	e := errors.Template("store file", errors.K.Invalid, "root", root)
	if root == "" {
		return nil, e("reason", "root dir is empty")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	err := fs.MkdirAll(root, 0755)
	if err != nil {
		return nil, e(errors.K.IO, err)
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, e(err)
	}
	return &file{
		fs:    fs,
		root:  root,
		cache: cache,
	}, nil
}

type file struct {
	mu    sync.Mutex
	fs    afero.Fs
	root  string
	cache *lru.Cache
}

func (f *file) Get(name string, path structured.Path) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load(name)
	if err != nil {
		return nil, errors.E("get", err, "name", name)
	}
	val, err := structured.Resolve(path, doc)
	if err != nil {
		return nil, errors.E("get", err, "name", name)
	}
	return structured.Copy(val), nil
}

func (f *file) Set(name string, path structured.Path, val interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.loadOrEmpty(name)
	if err != nil {
		return errors.E("set", err, "name", name)
	}
	doc, err = setInDoc(doc, path, val)
	if err != nil {
		return errors.E("set", err, "name", name)
	}
	return f.save(name, doc)
}

func (f *file) Clear(name string, path structured.Path) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load(name)
	if err != nil {
		if errors.IsNotExist(err) {
			return nil
		}
		return errors.E("clear", err, "name", name)
	}
	if len(path) == 0 {
		f.cache.Remove(name)
		err = f.fs.Remove(f.path(name))
		if err != nil {
			return errors.E("clear", errors.K.IO, err, "name", name)
		}
		return nil
	}
	doc, deleted := structured.Delete(doc, path)
	if !deleted {
		return nil
	}
	return f.save(name, doc)
}

func (f *file) Inc(name string, path structured.Path, delta, dflt float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.loadOrEmpty(name)
	if err != nil {
		return 0, errors.E("inc", err, "name", name)
	}
	doc, res, err := structured.Inc(doc, path, delta, dflt)
	if err != nil {
		return 0, errors.E("inc", err, "name", name)
	}
	return res, f.save(name, doc)
}

func (f *file) Toggle(name string, path structured.Path, dflt bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.loadOrEmpty(name)
	if err != nil {
		return false, errors.E("toggle", err, "name", name)
	}
	doc, res, err := structured.Toggle(doc, path, dflt)
	if err != nil {
		return false, errors.E("toggle", err, "name", name)
	}
	return res, f.save(name, doc)
}

func (f *file) Names() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	infos, err := afero.ReadDir(f.fs, f.root)
	if err != nil {
		return nil, errors.E("names", errors.K.IO, err, "root", f.root)
	}
	var names []string
	for _, fi := range infos {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), docExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(fi.Name(), docExt))
	}
	sort.Strings(names)
	return names, nil
}

func (f *file) Stat(name string) (*Info, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fi, err := f.fs.Stat(f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.E("stat", errors.K.NotExist, "name", name)
		}
		return nil, errors.E("stat", errors.K.IO, err, "name", name)
	}
	return &Info{
		Name:     name,
		Size:     fi.Size(),
		Modified: utc.New(fi.ModTime()),
	}, nil
}

func (f *file) Close() error {
	f.cache.Purge()
	return nil
}

func (f *file) path(name string) string {
	return filepath.Join(f.root, name+docExt)
}

// load returns the parsed document, from the cache or from disk. The cached
// document is the store's master copy: callers must not hand it out without
// copying.
func (f *file) load(name string) (interface{}, error) {
	if doc, ok := f.cache.Get(name); ok {
		return doc, nil
	}
	text, err := afero.ReadFile(f.fs, f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.E("load", errors.K.NotExist, "name", name)
		}
		return nil, errors.E("load", errors.K.IO, err, "name", name)
	}
	doc, err := (&structured.Unmarshaler{UseNumber: true}).JSON(text)
	if err != nil {
		return nil, errors.E("load", errors.K.Invalid, err, "name", name,
			"reason", "corrupt document")
	}
	doc = normalize(doc)
	f.cache.Add(name, doc)
	return doc, nil
}

func (f *file) loadOrEmpty(name string) (interface{}, error) {
	doc, err := f.load(name)
	if err != nil {
		if errors.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// save writes the document atomically: marshal to <path>.temp, then rename
// over the target file.
func (f *file) save(name string, doc interface{}) error {
	e := errors.Template("save", errors.K.IO, "name", name)
	doc = normalize(doc)

	path := f.path(name)
	temp := path + tempExt
	err := afero.WriteFile(f.fs, temp, jsonutil.MarshalCompact(doc), 0644)
	if err != nil {
		return e(err)
	}
	err = f.fs.Rename(temp, path)
	if err != nil {
		// os.Rename replaces the target atomically, but MemMapFs refuses to
		// rename over an existing file
		_ = f.fs.Remove(path)
		err = f.fs.Rename(temp, path)
	}
	if err != nil {
		_ = f.fs.Remove(temp)
		return e(err)
	}

	f.cache.Add(name, doc)
	log.Debug("document saved", "name", name, "path", path)
	return nil
}
