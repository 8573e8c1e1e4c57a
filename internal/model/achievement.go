package model

import "time"

type AchievementType string

const (
	AchievementStreak           AchievementType = "streak"
	AchievementTopicCompletion  AchievementType = "topic_completion"
	AchievementCourseCompletion AchievementType = "course_completion"
	AchievementQuizMastery      AchievementType = "quiz_mastery"
	AchievementPerfectScore     AchievementType = "perfect_score"
)

// Achievement is a seeded, points-bearing milestone definition.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Type        AchievementType `gorm:"size:30;not null;index" json:"type"`
	Threshold   int             `gorm:"not null" json:"threshold"`
	Points      int             `gorm:"not null" json:"points"`
	BadgeURL    string          `gorm:"size:255" json:"badgeUrl,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement holds at most one row per (user, achievement); unlocking
// twice is a no-op.
type UserAchievement struct {
	BaseModel
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"userId"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

// UserPoints accumulates reward points; Level is always points/100+1 and never
// decreases because points only increase.
// swagger:model UserPoints
type UserPoints struct {
	BaseModel
	UserID uint `gorm:"unique;not null" json:"userId"`
	Points int  `gorm:"default:0" json:"points"`
	Level  int  `gorm:"default:1" json:"level"`
}

func (UserPoints) TableName() string {
	return "user_points"
}
