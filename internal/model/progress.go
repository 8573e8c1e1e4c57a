package model

import "time"

// UserProgress tracks completion of a topic by a user, at most one row per
// (user, topic); re-marking updates the row in place.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_topic_progress" json:"userId"`
	TopicID     uint       `gorm:"not null;uniqueIndex:idx_user_topic_progress" json:"topicId"`
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// UserStreak counts consecutive calendar days with at least one topic
// completion. Day comparison truncates to local midnight.
// swagger:model UserStreak
type UserStreak struct {
	BaseModel
	UserID        uint      `gorm:"unique;not null" json:"userId"`
	CurrentStreak int       `gorm:"default:0" json:"currentStreak"`
	LastActive    time.Time `gorm:"not null" json:"lastActive"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}

// PomodoroSession is an append-only log entry recorded when a client-side work
// session finishes.
// swagger:model PomodoroSession
type PomodoroSession struct {
	BaseModel
	UserID       uint      `gorm:"index;not null" json:"userId"`
	StartTime    time.Time `gorm:"not null" json:"startTime"`
	EndTime      time.Time `gorm:"not null" json:"endTime"`
	WorkMinutes  int       `gorm:"not null" json:"workMinutes"`
	BreakMinutes int       `gorm:"not null" json:"breakMinutes"`
}

func (PomodoroSession) TableName() string {
	return "pomodoro_sessions"
}
