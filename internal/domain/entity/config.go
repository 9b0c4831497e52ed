package entity

// Language represents the display language of CLI messages
type Language string

const (
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"
)

// IsValid returns true if the language is supported
func (l Language) IsValid() bool {
	return l == LanguageJapanese || l == LanguageEnglish
}

// OutputFormat represents the output format of CLI results
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is supported
func (f OutputFormat) IsValid() bool {
	return f == OutputFormatText || f == OutputFormatJSON
}

// Config represents the persisted user configuration.
// Every group is optional; a nil group is omitted from the document.
type Config struct {
	GitHub  *GitHubConfig  `json:"github,omitempty"`
	Display *DisplayConfig `json:"display,omitempty"`
	Cache   *CacheConfig   `json:"cache,omitempty"`
}

// GitHubConfig contains GitHub account settings
type GitHubConfig struct {
	Username string `json:"username,omitempty"`
	Token    string `json:"token,omitempty"`
}

// DisplayConfig contains output settings
type DisplayConfig struct {
	Language    Language     `json:"language"`
	ColorOutput bool         `json:"colorOutput"`
	Format      OutputFormat `json:"format"`
}

// CacheConfig contains response cache settings
type CacheConfig struct {
	Enabled bool    `json:"enabled"`
	TTL     float64 `json:"ttl"` // minutes
}

// DefaultConfig returns a fresh copy of the default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: &DisplayConfig{
			Language:    LanguageJapanese,
			ColorOutput: true,
			Format:      OutputFormatText,
		},
		Cache: &CacheConfig{
			Enabled: true,
			TTL:     60,
		},
	}
}

// Clone returns a deep copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{}
	if c.GitHub != nil {
		github := *c.GitHub
		clone.GitHub = &github
	}
	if c.Display != nil {
		display := *c.Display
		clone.Display = &display
	}
	if c.Cache != nil {
		cache := *c.Cache
		clone.Cache = &cache
	}
	return clone
}

// Document returns the configuration as a generic JSON document, the same
// shape encoding/json produces when decoding the config file into an any.
func (c *Config) Document() map[string]any {
	doc := make(map[string]any)
	if c == nil {
		return doc
	}

	if c.GitHub != nil {
		github := make(map[string]any)
		if c.GitHub.Username != "" {
			github["username"] = c.GitHub.Username
		}
		if c.GitHub.Token != "" {
			github["token"] = c.GitHub.Token
		}
		doc["github"] = github
	}

	if c.Display != nil {
		doc["display"] = map[string]any{
			"language":    string(c.Display.Language),
			"colorOutput": c.Display.ColorOutput,
			"format":      string(c.Display.Format),
		}
	}

	if c.Cache != nil {
		doc["cache"] = map[string]any{
			"enabled": c.Cache.Enabled,
			"ttl":     c.Cache.TTL,
		}
	}

	return doc
}

// PartialConfig is an update payload. Nil groups and nil fields are left
// untouched when merged into an existing configuration.
type PartialConfig struct {
	GitHub  *PartialGitHub  `json:"github,omitempty"`
	Display *PartialDisplay `json:"display,omitempty"`
	Cache   *PartialCache   `json:"cache,omitempty"`
}

// PartialGitHub holds optional GitHub fields
type PartialGitHub struct {
	Username *string `json:"username,omitempty"`
	Token    *string `json:"token,omitempty"`
}

// PartialDisplay holds optional display fields
type PartialDisplay struct {
	Language    *Language     `json:"language,omitempty"`
	ColorOutput *bool         `json:"colorOutput,omitempty"`
	Format      *OutputFormat `json:"format,omitempty"`
}

// PartialCache holds optional cache fields
type PartialCache struct {
	Enabled *bool    `json:"enabled,omitempty"`
	TTL     *float64 `json:"ttl,omitempty"`
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
