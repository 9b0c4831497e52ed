package ports

import (
	"context"

	"duogito/internal/domain/entity"
)

// GitHubService defines the interface for GitHub data access
type GitHubService interface {
	GetUserInfo(ctx context.Context, username string) (*entity.User, error)
	GetContributions(ctx context.Context, username string, dateRange *entity.DateRange) ([]entity.ContributionDay, error)
	ValidateToken(ctx context.Context, token string) (bool, error)
	GetRateLimit(ctx context.Context) (*entity.RateLimitInfo, error)
}
