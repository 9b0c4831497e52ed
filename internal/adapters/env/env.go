package env

import (
	"fmt"
	"os"

	goenv "github.com/Netflix/go-env"
)

// Settings holds the environment variables duogito understands
type Settings struct {
	// GitHubToken is reported by "config show" when no token is stored
	GitHubToken string `env:"GITHUB_TOKEN"`
	ConfigDir   string `env:"DUOGITO_CONFIG_DIR"`
	Debug       bool   `env:"DUOGITO_DEBUG,default=false"`
	// NoColor follows https://no-color.org: any non-empty value disables colour
	NoColor string `env:"NO_COLOR"`
}

// ColorDisabled returns true if NO_COLOR is set
func (s *Settings) ColorDisabled() bool {
	return s.NoColor != ""
}

// Load parses settings from a list of KEY=value pairs
func Load(environ []string) (*Settings, error) {
	es, err := goenv.EnvironToEnvSet(environ)
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	// Empty variables count as unset
	for key, value := range es {
		if value == "" {
			delete(es, key)
		}
	}

	var settings Settings
	if err := goenv.Unmarshal(es, &settings); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &settings, nil
}

// FromEnviron parses settings from the process environment
func FromEnviron() (*Settings, error) {
	return Load(os.Environ())
}
