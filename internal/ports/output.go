package ports

import "duogito/internal/domain/entity"

// CheckResult is what the check command reports for a user
type CheckResult struct {
	Username string              `json:"username"`
	Format   entity.OutputFormat `json:"format"`
	Status   string              `json:"status"`
}

// Printer defines the interface for user-facing output
type Printer interface {
	Welcome() error
	Check(result CheckResult) error
	Config(cfg *entity.Config, path string) error
	Value(key string, value any) error
	Updated(key string) error
	ResetDone() error
}
