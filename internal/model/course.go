package model

// Course is static catalog data seeded at startup.
// swagger:model Course
type Course struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"imageUrl,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Topic is an atomic unit of learnable content within a course. Prerequisites
// reference other topic ids of the same course and gate completion ordering.
// swagger:model Topic
type Topic struct {
	BaseModel
	CourseID      uint     `gorm:"index;not null" json:"courseId"`
	Title         string   `gorm:"size:255;not null" json:"title"`
	Description   string   `gorm:"type:text" json:"description"`
	Order         int      `gorm:"column:sort_order;default:0" json:"order"`
	Prerequisites []uint   `gorm:"serializer:json;type:text" json:"prerequisites"`
}

func (Topic) TableName() string {
	return "topics"
}

type ResourceType string

const (
	ResourceWeb   ResourceType = "web"
	ResourceVideo ResourceType = "video"
)

// Resource is an external learning link attached to a topic.
// swagger:model Resource
type Resource struct {
	BaseModel
	TopicID uint         `gorm:"index;not null" json:"topicId"`
	Title   string       `gorm:"size:255;not null" json:"title"`
	URL     string       `gorm:"size:255;not null" json:"url"`
	Type    ResourceType `gorm:"size:20;not null" json:"type"`
}

func (Resource) TableName() string {
	return "resources"
}
