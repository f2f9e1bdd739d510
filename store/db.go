package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/focusplan/internal/osutil"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// bucket holds every persisted blob.
const bucket = "state"

// DB is an opaque key/value blob store.
type DB interface {
	// Get returns the value stored at key, or nil if the key is absent
	Get(key string) ([]byte, error)
	// Put creates or overwrites the value at key
	Put(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error
	Delete(key string) error
	// Close ends the database connection
	Close() error
}

// Open opens the blob store for the named driver at path, creating the file
// and its parent directory if necessary.
func Open(driver, path string) (DB, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	switch driver {
	case DriverBolt, "":
		return NewClient(path)
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}
