package ports

import "duogito/internal/domain/entity"

// StreakCalculator computes contribution streaks from calendar days
type StreakCalculator interface {
	// CalculateStreak expects days ordered by date
	CalculateStreak(days []entity.ContributionDay) entity.ContributionStreak
	AchievementMessages(streak entity.ContributionStreak) []string
}
