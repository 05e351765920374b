package store

import (
	"github.com/eluv-io/errors-go"
	"github.com/spf13/afero"

	"github.com/eluv-io/docstore-go/util/codecutil"
)

// DefaultCacheSize is the number of parsed documents the file driver keeps in
// memory.
const DefaultCacheSize = 32

// Config is the configuration of a document store.
type Config struct {
	// Driver selects the backend: "memory" (default) or "file".
	Driver string `json:"driver"`
	// RootDir is the directory holding the document files (file driver).
	RootDir string `json:"root_dir"`
	// CacheSize is the max number of parsed documents kept in memory (file
	// driver). Defaults to DefaultCacheSize.
	CacheSize int `json:"cache_size"`
}

// Open creates a driver from the given configuration details, typically
// parsed from a JSON or YAML configuration document.
func Open(details map[string]interface{}) (Driver, error) {
	cfg := &Config{}
	err := codecutil.MapDecode(details, cfg)
	if err != nil {
		return nil, errors.E("store open", errors.K.Invalid, err)
	}
	return OpenConfig(cfg)
}

// OpenConfig creates a driver from the given configuration.
func OpenConfig(cfg *Config) (Driver, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(afero.NewOsFs(), cfg.RootDir, cfg.CacheSize)
	}
	return nil, errors.E("store open", errors.K.Invalid,
		"reason", "unknown driver",
		"driver", cfg.Driver)
}
