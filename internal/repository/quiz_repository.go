package repository

import (
	"learntrack_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByTopic(topicID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("topic_id = ?", topicID).Order("id").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindQuestionsByQuiz(quizID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) CreateQuestion(question *model.QuizQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QuizRepository) CreateAttempt(attempt *model.UserQuizAttempt) error {
	return r.DB.Create(attempt).Error
}

// FindAttemptsByUser returns a user's attempts, newest first; quizID narrows
// the result when non-zero.
func (r *QuizRepository) FindAttemptsByUser(userID, quizID uint) ([]model.UserQuizAttempt, error) {
	var attempts []model.UserQuizAttempt
	q := r.DB.Where("user_id = ?", userID)
	if quizID != 0 {
		q = q.Where("quiz_id = ?", quizID)
	}
	err := q.Order("completed_at desc").Find(&attempts).Error
	return attempts, err
}

func (r *QuizRepository) CountAttemptsByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserQuizAttempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *QuizRepository) CountPerfectAttemptsByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserQuizAttempt{}).
		Where("user_id = ? AND score = max_score", userID).
		Count(&count).Error
	return count, err
}

func (r *QuizRepository) CreateAnswer(answer *model.UserQuizAnswer) error {
	return r.DB.Create(answer).Error
}
