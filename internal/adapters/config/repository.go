package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"duogito/internal/domain"
	"duogito/internal/domain/entity"
)

const (
	appName        = "duogito"
	configFileName = "config.json"
)

// Repository implements the ConfigRepository interface on a JSON file
type Repository struct {
	configDir  string
	configFile string
}

// NewRepository creates a config repository rooted at dir.
// An empty dir selects DefaultDir.
func NewRepository(dir string) *Repository {
	if dir == "" {
		dir = DefaultDir()
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	return &Repository{
		configDir:  dir,
		configFile: filepath.Join(dir, configFileName),
	}
}

// DefaultDir returns the per-user configuration directory for duogito
func DefaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, appName)
	}

	// Fall back to a dot directory in HOME
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "."+appName)
}

// EnsureDir creates the configuration directory with all parents
func (r *Repository) EnsureDir() error {
	if err := os.MkdirAll(r.configDir, 0o755); err != nil {
		return domain.NewFileAccessError("create directory", r.configDir, err)
	}
	return nil
}

// Load reads the configuration file and decodes it into a generic document
func (r *Repository) Load() (any, error) {
	data, err := os.ReadFile(r.configFile)
	if err != nil {
		return nil, domain.NewFileAccessError("read", r.configFile, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", r.configFile, err)
	}

	return doc, nil
}

// Save overwrites the configuration file with cfg as indented JSON
func (r *Repository) Save(cfg *entity.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// The file may hold a token
	if err := os.WriteFile(r.configFile, data, 0o600); err != nil {
		return domain.NewFileAccessError("write", r.configFile, err)
	}

	return nil
}

// Path returns the absolute path of the configuration file
func (r *Repository) Path() string {
	return r.configFile
}

// Dir returns the configuration directory
func (r *Repository) Dir() string {
	return r.configDir
}
