package entity

import "time"

// User represents a GitHub user profile
type User struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	PublicRepos int       `json:"publicRepos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContributionLevel mirrors GitHub's calendar quartiles (0-4)
type ContributionLevel int

// ContributionDay is one cell of the contribution calendar
type ContributionDay struct {
	Date              string            `json:"date"` // YYYY-MM-DD
	ContributionCount int               `json:"contributionCount"`
	ContributionLevel ContributionLevel `json:"contributionLevel"`
}

// ContributionStreak summarizes consecutive contribution days
type ContributionStreak struct {
	CurrentStreak          int      `json:"currentStreak"`
	CurrentStreakStartDate string   `json:"currentStreakStartDate,omitempty"`
	CurrentStreakEndDate   string   `json:"currentStreakEndDate,omitempty"`
	LongestStreak          int      `json:"longestStreak"`
	LongestStreakStartDate string   `json:"longestStreakStartDate,omitempty"`
	LongestStreakEndDate   string   `json:"longestStreakEndDate,omitempty"`
	TotalContributions     int      `json:"totalContributions"`
	LastContributionDate   string   `json:"lastContributionDate,omitempty"`
	AchievementMessages    []string `json:"achievementMessages,omitempty"`
}

// DateRange is an inclusive range of YYYY-MM-DD dates
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// RateLimitInfo contains API quota information
type RateLimitInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetTime time.Time `json:"resetTime"`
}

// CacheStats contains cache usage statistics
type CacheStats struct {
	TotalEntries int     `json:"totalEntries"`
	TotalSize    int64   `json:"totalSize"` // bytes
	HitRate      float64 `json:"hitRate"`   // percentage
	TotalHits    int     `json:"totalHits"`
	TotalMisses  int     `json:"totalMisses"`
}
