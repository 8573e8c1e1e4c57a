package model

import "time"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	TopicID      uint   `gorm:"index;not null" json:"topicId"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Difficulty   int    `gorm:"default:1" json:"difficulty"`
	PointsToEarn int    `gorm:"default:10" json:"pointsToEarn"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion stores its options as an ordered list; CorrectAnswer is always
// one of them.
// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID        uint         `gorm:"index;not null" json:"quizId"`
	QuestionText  string       `gorm:"type:text;not null" json:"questionText"`
	QuestionType  QuestionType `gorm:"size:20;not null" json:"questionType"`
	Options       []string     `gorm:"serializer:json;type:text" json:"options"`
	CorrectAnswer string       `gorm:"size:255;not null" json:"correctAnswer"`
	Explanation   string       `gorm:"type:text" json:"explanation"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// UserQuizAttempt is an append-only record of one completed pass through a
// quiz.
// swagger:model UserQuizAttempt
type UserQuizAttempt struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	QuizID      uint      `gorm:"index;not null" json:"quizId"`
	Score       int       `gorm:"not null" json:"score"`
	MaxScore    int       `gorm:"not null" json:"maxScore"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (UserQuizAttempt) TableName() string {
	return "user_quiz_attempts"
}

// swagger:model UserQuizAnswer
type UserQuizAnswer struct {
	BaseModel
	AttemptID  uint   `gorm:"index;not null" json:"attemptId"`
	QuestionID uint   `gorm:"not null" json:"questionId"`
	UserAnswer string `gorm:"size:255" json:"userAnswer"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (UserQuizAnswer) TableName() string {
	return "user_quiz_answers"
}
