package service

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"duogito/internal/domain"
	"duogito/internal/domain/entity"
	"duogito/internal/ports"
)

// ConfigService implements configuration management business logic.
// It keeps the last read configuration in memory until ClearCache.
type ConfigService struct {
	configRepo ports.ConfigRepository
	logger     *zap.Logger

	mu     sync.Mutex
	cached *entity.Config
}

// NewConfigService creates a new configuration service
func NewConfigService(configRepo ports.ConfigRepository, logger *zap.Logger) *ConfigService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Read returns the current configuration. It never fails: a missing,
// unreadable, malformed or invalid file yields the default configuration.
// The returned value is a copy the caller may modify.
func (s *ConfigService) Read() *entity.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked().Clone()
}

func (s *ConfigService) readLocked() *entity.Config {
	if s.cached != nil {
		return s.cached
	}

	s.ensureDir()

	cfg, err := s.load()
	if err != nil {
		s.logger.Debug("using default configuration",
			zap.String("path", s.configRepo.Path()),
			zap.Error(err))
		cfg = entity.DefaultConfig()
	}

	s.cached = cfg
	return s.cached
}

func (s *ConfigService) load() (*entity.Config, error) {
	doc, err := s.configRepo.Load()
	if err != nil {
		return nil, err
	}
	return s.Validate(doc)
}

// Write merges partial into the current configuration, validates the
// result and persists it. Validation and filesystem errors are returned.
func (s *ConfigService) Write(partial entity.PartialConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureDir()

	merged := mergeConfig(s.readLocked(), partial)

	validated, err := s.Validate(merged)
	if err != nil {
		return err
	}

	s.cached = validated

	if err := s.configRepo.Save(validated); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	s.logger.Debug("configuration saved", zap.String("path", s.configRepo.Path()))
	return nil
}

// Reset overwrites the stored configuration with the defaults
func (s *ConfigService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureDir()

	s.cached = entity.DefaultConfig()

	if err := s.configRepo.Save(s.cached); err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}

	s.logger.Debug("configuration reset", zap.String("path", s.configRepo.Path()))
	return nil
}

// ClearCache drops the in-memory configuration so the next Read goes to disk
func (s *ConfigService) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
}

// StorePath returns the path of the backing file, for diagnostics
func (s *ConfigService) StorePath() string {
	return s.configRepo.Path()
}

// ensureDir creates the config directory. Failures are only logged; a
// directory that really cannot be created surfaces when the file is saved.
func (s *ConfigService) ensureDir() {
	if err := s.configRepo.EnsureDir(); err != nil {
		s.logger.Debug("could not ensure config directory", zap.Error(err))
	}
}

// mergeConfig shallow-merges each group present in partial into a copy of
// current. Only the github, display and cache groups are considered.
func mergeConfig(current *entity.Config, partial entity.PartialConfig) *entity.Config {
	result := current.Clone()
	if result == nil {
		result = entity.DefaultConfig()
	}

	if p := partial.GitHub; p != nil {
		github := &entity.GitHubConfig{}
		if result.GitHub != nil {
			*github = *result.GitHub
		}
		if p.Username != nil {
			github.Username = *p.Username
		}
		if p.Token != nil {
			github.Token = *p.Token
		}
		result.GitHub = github
	}

	if p := partial.Display; p != nil {
		display := &entity.DisplayConfig{}
		if result.Display != nil {
			*display = *result.Display
		}
		if p.Language != nil {
			display.Language = *p.Language
		}
		if p.ColorOutput != nil {
			display.ColorOutput = *p.ColorOutput
		}
		if p.Format != nil {
			display.Format = *p.Format
		}
		result.Display = display
	}

	if p := partial.Cache; p != nil {
		cache := &entity.CacheConfig{}
		if result.Cache != nil {
			*cache = *result.Cache
		}
		if p.Enabled != nil {
			cache.Enabled = *p.Enabled
		}
		if p.TTL != nil {
			cache.TTL = *p.TTL
		}
		result.Cache = cache
	}

	return result
}

// Validate checks candidate and returns a normalized configuration built on
// top of the defaults. candidate is either a decoded JSON document or an
// entity.Config. It performs no I/O.
//
// Group-level type mismatches, unsupported language/format values and a
// negative TTL are errors; individual fields of the wrong type are skipped.
func (s *ConfigService) Validate(candidate any) (*entity.Config, error) {
	return validateConfig(candidate)
}

func validateConfig(candidate any) (*entity.Config, error) {
	switch c := candidate.(type) {
	case *entity.Config:
		if c == nil {
			return nil, domain.NewValidationError("", "config must be an object")
		}
		candidate = c.Document()
	case entity.Config:
		candidate = c.Document()
	}

	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return nil, domain.NewValidationError("", "config must be an object")
	}

	result := entity.DefaultConfig()

	if raw, ok := obj["github"]; ok && isSet(raw) {
		group, ok := raw.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError("github", "GitHub config must be an object")
		}
		result.GitHub = &entity.GitHubConfig{}
		if username, ok := group["username"].(string); ok {
			result.GitHub.Username = username
		}
		if token, ok := group["token"].(string); ok {
			result.GitHub.Token = token
		}
	}

	if raw, ok := obj["display"]; ok && isSet(raw) {
		group, ok := raw.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError("display", "display config must be an object")
		}

		if value, ok := group["language"]; ok && isSet(value) {
			language, _ := value.(string)
			if !entity.Language(language).IsValid() {
				return nil, domain.NewValidationError("display.language", `language must be "ja" or "en"`)
			}
			result.Display.Language = entity.Language(language)
		}

		if colorOutput, ok := group["colorOutput"].(bool); ok {
			result.Display.ColorOutput = colorOutput
		}

		if value, ok := group["format"]; ok && isSet(value) {
			format, _ := value.(string)
			if !entity.OutputFormat(format).IsValid() {
				return nil, domain.NewValidationError("display.format", `format must be "text" or "json"`)
			}
			result.Display.Format = entity.OutputFormat(format)
		}
	}

	if raw, ok := obj["cache"]; ok && isSet(raw) {
		group, ok := raw.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError("cache", "cache config must be an object")
		}

		if enabled, ok := group["enabled"].(bool); ok {
			result.Cache.Enabled = enabled
		}

		if ttl, ok := toFloat(group["ttl"]); ok {
			if math.IsNaN(ttl) || math.IsInf(ttl, 0) || ttl < 0 {
				return nil, domain.NewValidationError("cache.ttl", "cache TTL must be a finite non-negative number")
			}
			result.Cache.TTL = ttl
		}
	}

	return result, nil
}

// isSet reports whether a JSON value counts as present. null, false, 0 and
// the empty string are treated like a missing key.
func isSet(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
