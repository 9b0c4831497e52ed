package ports

import "duogito/internal/domain/entity"

// ConfigRepository defines the interface for configuration file access
type ConfigRepository interface {
	// EnsureDir creates the configuration directory if needed
	EnsureDir() error
	// Load reads the configuration file and returns the decoded JSON document
	Load() (any, error)
	// Save overwrites the configuration file with cfg
	Save(cfg *entity.Config) error
	// Path returns the absolute path of the configuration file
	Path() string
}

// ConfigService defines high-level configuration operations
type ConfigService interface {
	// Read never fails; corrupt or missing files yield the defaults
	Read() *entity.Config
	Write(partial entity.PartialConfig) error
	Reset() error
	Validate(candidate any) (*entity.Config, error)
	ClearCache()
	StorePath() string
}
