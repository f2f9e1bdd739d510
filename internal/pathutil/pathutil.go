// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "FOCUSPLAN_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "focusplan",
			configFileName: "config.yml",
			boltFileName:   "focusplan.db",
			sqliteFileName: "focusplan.sqlite",
			logFileName:    "focusplan.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DataDir() string {
	return Must().dataDir
}

// DBFilePath returns the default database file for the named storage driver.
func DBFilePath(driver string) string {
	p := Must()

	if driver == "sqlite" {
		return filepath.Join(p.dataDir, p.sqliteFileName)
	}

	return filepath.Join(p.dataDir, p.boltFileName)
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("focusplan_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("focusplan_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("focusplan_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	// xdg.DataFile creates the parent directories of the returned path
	marker, err := xdg.DataFile(filepath.Join(p.configDir, p.boltFileName))
	if err != nil {
		return fmt.Errorf("resolving data path: %w", err)
	}

	p.dataDir = filepath.Dir(marker)

	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
