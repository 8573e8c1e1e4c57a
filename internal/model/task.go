package model

import "time"

// Task is a personal to-do item, optionally tied to a topic. Fully mutable and
// deletable by its owner.
// swagger:model Task
type Task struct {
	BaseModel
	UserID        uint       `gorm:"index;not null" json:"userId"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	TopicID       *uint      `gorm:"index" json:"topicId,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Importance    int        `gorm:"default:1" json:"importance"` // 1..3
	IsCompleted   bool       `gorm:"default:false" json:"isCompleted"`
}

func (Task) TableName() string {
	return "tasks"
}
