package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/abacus/internal/convert"
	abacuserrors "github.com/zhubert/abacus/internal/errors"
	"github.com/zhubert/abacus/internal/storage"
	"github.com/zhubert/abacus/internal/ui"
)

// DirName is the directory under $HOME holding the config and, by default,
// the history data.
const DirName = ".abacus"

// Config holds the application configuration
type Config struct {
	Theme        string `json:"theme,omitempty"`         // UI theme name ("light", "dark", "neon")
	Storage      string `json:"storage,omitempty"`       // History backend ("file", "sqlite", "memory")
	DataDir      string `json:"data_dir,omitempty"`      // Directory for history data; defaults to ~/.abacus
	BellOnError  bool   `json:"bell_on_error,omitempty"` // Beep when an evaluation fails
	LastCategory string `json:"last_category,omitempty"` // Conversion category the panel reopens on

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads ~/.abacus/config.json, or returns defaults if it doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, abacuserrors.ConfigLoadFailed("", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults bound to path if the
// file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, abacuserrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, abacuserrors.ConfigLoadFailed(path, err)
	}

	// Defaults must be filled before Validate, which only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path returns the location Load reads from.
func Path() (string, error) {
	return configPath()
}

// Defaults returns a default config bound to path, for when the file at path
// cannot be used. Saving it overwrites that file.
func Defaults(path string) *Config {
	cfg := &Config{filePath: path}
	cfg.ensureInitialized()
	return cfg
}

// ensureInitialized fills empty fields with defaults.
//
// Thread-safety: NOT thread-safe; only call during single-threaded
// initialization from Load before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Theme == "" {
		c.Theme = string(ui.DefaultTheme)
	}
	if c.Storage == "" {
		c.Storage = storage.BackendFile
	}
	if c.DataDir == "" {
		if c.filePath != "" {
			c.DataDir = filepath.Dir(c.filePath)
		} else if dir, err := configDir(); err == nil {
			c.DataDir = dir
		}
	}
	if c.LastCategory == "" {
		c.LastCategory = string(convert.Categories()[0])
	}
}

// Validate checks that every field holds a known value.
// This is a read-only operation - call ensureInitialized() first if needed.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !ui.IsTheme(c.Theme) {
		return abacuserrors.ConfigInvalid("unknown theme: " + c.Theme)
	}
	if !storage.IsBackend(c.Storage) {
		return abacuserrors.ConfigInvalid("unknown storage backend: " + c.Storage)
	}
	if _, err := convert.ParseCategory(c.LastCategory); err != nil {
		return abacuserrors.ConfigInvalid("unknown conversion category: " + c.LastCategory)
	}
	return nil
}

// Save writes the config to disk, creating its directory if needed.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return abacuserrors.ConfigSaveFailed("", os.ErrInvalid)
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return abacuserrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return abacuserrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return abacuserrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// SetFilePath sets where Save writes.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns where Save writes.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetStorage returns the history backend name
func (c *Config) GetStorage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Storage
}

// SetStorage sets the history backend name
func (c *Config) SetStorage(backend string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Storage = backend
}

// GetDataDir returns the history data directory
func (c *Config) GetDataDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DataDir
}

// SetDataDir sets the history data directory
func (c *Config) SetDataDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DataDir = dir
}

// GetBellOnError returns whether failed evaluations beep
func (c *Config) GetBellOnError() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BellOnError
}

// SetBellOnError sets whether failed evaluations beep
func (c *Config) SetBellOnError(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BellOnError = enabled
}

// GetLastCategory returns the conversion category to reopen on
func (c *Config) GetLastCategory() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastCategory
}

// SetLastCategory records the conversion category in use
func (c *Config) SetLastCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastCategory = category
}

// OpenStorage opens the configured history backend.
func (c *Config) OpenStorage() (storage.Slot, error) {
	return storage.Open(c.GetStorage(), c.GetDataDir())
}
