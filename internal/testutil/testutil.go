// Package testutil provides helpers shared by focusplan tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/focusplan/internal/osutil"
)

// CompareGoldenFile verifies that output matches testdata/<name>.golden.
// A nil output asserts that no golden file exists.
func CompareGoldenFile(t *testing.T, name string, output []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: need to sort out line endings
		t.Skip("skipping golden file test in Windows")
	}

	if output == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}

// ErrInjected is returned by a MemDB whose FailWrites flag is set.
var ErrInjected = errors.New("injected failure")

// MemDB is an in-memory blob store for tests.
type MemDB struct {
	data       map[string][]byte
	Puts       int
	FailWrites bool
	mu         sync.Mutex
}

func NewMemDB() *MemDB {
	return &MemDB{data: make(map[string][]byte)}
}

func (m *MemDB) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), v...), nil
}

func (m *MemDB) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrInjected
	}

	m.Puts++
	m.data[key] = append([]byte(nil), value...)

	return nil
}

func (m *MemDB) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

func (m *MemDB) Close() error {
	return nil
}
